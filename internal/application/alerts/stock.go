package alerts

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

// defaultLowStockThreshold aplica cuando el setting falta o no es numérico.
const defaultLowStockThreshold = 5

// maxNamedProducts límite de nombres listados en el mensaje de la alerta.
const maxNamedProducts = 3

// checkLowStock particiona el catálogo en agotados (stock 0) y bajos
// (0 < stock <= umbral) y emite a lo más una alerta por cada grupo.
func (e *Engine) checkLowStock(ctx context.Context) ([]entity.Alert, error) {
	raw, err := e.settings.Get(ctx, entity.SettingLowStockThreshold)
	if err != nil {
		return nil, err
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		threshold = defaultLowStockThreshold
	}

	products, err := e.products.List(ctx)
	if err != nil {
		return nil, err
	}

	var outOfStock, lowStock []entity.Product
	for _, p := range products {
		switch {
		case p.StockQuantity == 0:
			outOfStock = append(outOfStock, p)
		case p.StockQuantity <= threshold:
			lowStock = append(lowStock, p)
		}
	}

	var alerts []entity.Alert
	if len(outOfStock) > 0 {
		names := make([]string, 0, maxNamedProducts)
		for _, p := range outOfStock[:min(len(outOfStock), maxNamedProducts)] {
			names = append(names, p.Name)
		}
		suffix := ""
		if len(outOfStock) > maxNamedProducts {
			suffix = fmt.Sprintf(" +%d more", len(outOfStock)-maxNamedProducts)
		}
		alerts = append(alerts, entity.Alert{
			ID:    "out-of-stock",
			Type:  entity.AlertTypeStock,
			Icon:  "🚫",
			Title: "Out of Stock!",
			Message: fmt.Sprintf("%d product%s completely out of stock: %s%s",
				len(outOfStock), pluralIsAre(len(outOfStock)), strings.Join(names, ", "), suffix),
			Severity: entity.SeverityCritical,
		})
	}

	if len(lowStock) > 0 {
		names := make([]string, 0, maxNamedProducts)
		for _, p := range lowStock[:min(len(lowStock), maxNamedProducts)] {
			names = append(names, fmt.Sprintf("%s (%d)", p.Name, p.StockQuantity))
		}
		alerts = append(alerts, entity.Alert{
			ID:    "low-stock",
			Type:  entity.AlertTypeStock,
			Icon:  "📦",
			Title: "Low Stock Warning",
			Message: fmt.Sprintf("%d product%s running low: %s",
				len(lowStock), pluralIsAre(len(lowStock)), strings.Join(names, ", ")),
			Severity: entity.SeverityWarning,
		})
	}

	return alerts, nil
}

// pluralIsAre completa "product(s) is/are" según la cuenta; es contrato de
// formato exacto, no solo de número.
func pluralIsAre(n int) string {
	if n > 1 {
		return "s are"
	}
	return " is"
}
