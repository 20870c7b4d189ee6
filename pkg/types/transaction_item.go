package types

import (
	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// TransactionItem is the denormalized line snapshot stored on a transaction
// (and on the contract generated from it). It freezes the product and pricing
// data exactly as the cart held them at checkout time.
type TransactionItem struct {
	ProductID   string                 `json:"product_id"`
	ProductName string                 `json:"product_name"`
	SellerName  string                 `json:"seller_name"`
	Condition   enums.ProductCondition `json:"condition"`
	Location    string                 `json:"location"`
	Mode        enums.CartMode         `json:"mode"`
	Quantity    int                    `json:"quantity"`
	UnitPrice   decimal.Decimal        `json:"unit_price"`

	// Rental-only fields; zero for sale lines.
	RentalDuration int                `json:"rental_duration,omitempty"`
	RentalUnit     enums.DurationUnit `json:"rental_unit,omitempty"`
	RentalRate     decimal.Decimal    `json:"rental_rate,omitempty"`
	RentalTotal    decimal.Decimal    `json:"rental_total,omitempty"`

	LineTotal decimal.Decimal `json:"line_total"`
}

// TransactionItems is the jsonb column shape.
type TransactionItems []TransactionItem
