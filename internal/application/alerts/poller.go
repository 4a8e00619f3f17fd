package alerts

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/billmate-pos/internal/domain/repository"
	"github.com/jhoicas/billmate-pos/pkg/logger"
)

// DefaultPollInterval intervalo recomendado para refrescar el contador.
const DefaultPollInterval = 60 * time.Second

// Poller recalcula periódicamente el número de alertas no descartadas, para
// el contador (badge) de la campana de notificaciones. Es una tarea
// periódica cancelable: Stop la detiene sin fugas al desmontar la vista.
type Poller struct {
	engine    *Engine
	dismissed repository.DismissedAlertRepository
	interval  time.Duration
	log       *logger.Logger

	count    atomic.Int64
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// NewPoller construye el poller. interval <= 0 usa DefaultPollInterval.
func NewPoller(engine *Engine, dismissed repository.DismissedAlertRepository, interval time.Duration, log *logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		engine:    engine,
		dismissed: dismissed,
		interval:  interval,
		log:       log,
	}
}

// Start lanza el ciclo de refresco. El primer cálculo es inmediato.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		p.refresh(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.refresh(ctx)
			}
		}
	}()
}

// Stop cancela el ciclo y espera a que el goroutine termine.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
			<-p.done
		}
	})
}

// Count devuelve el último número de alertas activas calculado.
func (p *Poller) Count() int {
	return int(p.count.Load())
}

func (p *Poller) refresh(ctx context.Context) {
	alerts := p.engine.Generate(ctx)

	dismissed, err := p.dismissed.ListIDs(ctx)
	if err != nil {
		// Sin el conjunto de descartados el conteo sería engañoso; se
		// conserva el valor anterior.
		p.log.Debug().Err(err).Msg("no se pudo leer alertas descartadas")
		return
	}
	hidden := make(map[string]bool, len(dismissed))
	for _, id := range dismissed {
		hidden[id] = true
	}

	n := 0
	for _, a := range alerts {
		if !hidden[a.ID] {
			n++
		}
	}
	p.count.Store(int64(n))
}
