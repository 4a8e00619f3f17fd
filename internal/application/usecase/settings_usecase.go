package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

// SettingsUseCase lee y escribe la configuración de la tienda.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el valor de una clave, con el default aplicado si no existe.
func (uc *SettingsUseCase) Get(ctx context.Context, key string) (string, error) {
	if _, known := entity.DefaultSettings[key]; !known {
		return "", domain.ErrNotFound
	}
	return uc.repo.Get(ctx, key)
}

// Set persiste el valor de una clave conocida. El umbral de stock bajo debe
// ser un entero no negativo.
func (uc *SettingsUseCase) Set(ctx context.Context, key, value string) error {
	if _, known := entity.DefaultSettings[key]; !known {
		return domain.ErrNotFound
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.ErrInvalidInput
	}
	if key == entity.SettingLowStockThreshold {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return domain.ErrInvalidInput
		}
	}
	return uc.repo.Set(ctx, key, value)
}

// GetAll devuelve el mapa completo: defaults sobreescritos por lo persistido.
func (uc *SettingsUseCase) GetAll(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Settings: settings}, nil
}
