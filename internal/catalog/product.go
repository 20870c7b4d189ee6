package catalog

import (
	"fmt"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Seller is the storefront identity attached to a product. It has no
// lifecycle of its own; it travels embedded in the product snapshot.
type Seller struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Verified    bool    `json:"verified"`
	MemberSince string  `json:"member_since"`
}

// Product is an immutable catalog entry. Prices are whole COP amounts.
type Product struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Price            decimal.Decimal        `json:"price"`
	Image            string                 `json:"image"`
	Description      string                 `json:"description"`
	Category         string                 `json:"category"`
	Seller           Seller                 `json:"seller"`
	AvailableForSale bool                   `json:"available_for_sale"`
	AvailableForRent bool                   `json:"available_for_rent"`
	Condition        enums.ProductCondition `json:"condition"`
	Location         string                 `json:"location"`
}

// Validate enforces the catalog-boundary contract before a product can
// reach the cart.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %s has negative price %s", p.ID, p.Price)
	}
	if !p.Condition.IsValid() {
		return fmt.Errorf("product %s has unknown condition %q", p.ID, p.Condition)
	}
	return nil
}
