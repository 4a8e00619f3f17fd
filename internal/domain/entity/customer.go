package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la tienda con su khata (libreta de fiado).
// Balance positivo = el cliente debe dinero a la tienda. El modelo no impone
// piso en cero: los abonos restan libremente.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
