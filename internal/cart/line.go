package cart

import (
	"github.com/alquigo/alquigo-backend/internal/catalog"
	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Line is one row of the cart: a product snapshot in a specific
// transaction mode. The product fields are frozen at add-time; catalog
// changes never flow back into an existing line.
type Line struct {
	Product  catalog.Product `json:"product"`
	Mode     enums.CartMode  `json:"mode"`
	Quantity int             `json:"quantity"`

	// Rental-only fields. Rate is the derived per-unit price, Total is
	// the cached rate x duration for one unit of quantity.
	Duration int                `json:"duration,omitempty"`
	Unit     enums.DurationUnit `json:"unit,omitempty"`
	Rate     decimal.Decimal    `json:"rate"`
	Total    decimal.Decimal    `json:"total"`
}

// LineTotal is the line's contribution to the cart subtotal.
func (l Line) LineTotal() decimal.Decimal {
	qty := decimal.NewFromInt(int64(l.Quantity))
	if l.Mode == enums.CartModeRental {
		return l.Total.Mul(qty)
	}
	return l.Product.Price.Mul(qty)
}

// recomputeRentalTotal refreshes the cached total after a duration or
// unit change.
func (l *Line) recomputeRentalTotal() {
	l.Total = l.Rate.Mul(decimal.NewFromInt(int64(l.Duration)))
}
