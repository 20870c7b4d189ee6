package cart

import (
	"context"
	"fmt"

	"github.com/alquigo/alquigo-backend/internal/catalog"
	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// RentalCart is the aggregate holding a single owner's cart lines. It
// hydrates from its store once at construction and writes the full
// snapshot back after every mutation. Snapshot writes are best-effort:
// the in-memory lines stay authoritative for the session even when the
// store is unavailable.
type RentalCart struct {
	ownerID string
	store   Store
	logg    *logger.Logger
	lines   []Line
}

// New hydrates a cart for the given owner. A missing or corrupt
// snapshot yields an empty cart.
func New(ctx context.Context, ownerID string, store Store, logg *logger.Logger) (*RentalCart, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id is required")
	}
	if store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &RentalCart{
		ownerID: ownerID,
		store:   store,
		logg:    logg,
		lines:   store.Load(ctx, ownerID),
	}, nil
}

// AddItem merges a product into the cart. A repeat add for the same
// (product, mode) pair increments the existing line's quantity and
// leaves its rental duration untouched. Validation happens before any
// state changes, so a rejected add leaves the cart as it was.
func (c *RentalCart) AddItem(ctx context.Context, product catalog.Product, mode enums.CartMode, duration int, unit enums.DurationUnit) error {
	if err := product.Validate(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product")
	}

	switch mode {
	case enums.CartModeSale:
		if !product.AvailableForSale {
			return pkgerrors.New(pkgerrors.CodeProductUnavailable, fmt.Sprintf("product %s is not for sale", product.ID))
		}
	case enums.CartModeRental:
		if !product.AvailableForRent {
			return pkgerrors.New(pkgerrors.CodeProductUnavailable, fmt.Sprintf("product %s is not available for rent", product.ID))
		}
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown cart mode %q", mode))
	}

	if existing := c.findLine(product.ID, mode); existing != nil {
		existing.Quantity++
		c.persist(ctx)
		return nil
	}

	line := Line{
		Product:  product,
		Mode:     mode,
		Quantity: 1,
	}
	if mode == enums.CartModeRental {
		if duration < 1 {
			return pkgerrors.New(pkgerrors.CodeInvalidDuration, fmt.Sprintf("rental duration %d is below the 1-unit minimum", duration))
		}
		rate, err := DeriveRentalRate(product.Price, unit)
		if err != nil {
			return err
		}
		line.Duration = duration
		line.Unit = unit
		line.Rate = rate
		line.recomputeRentalTotal()
	}

	c.lines = append(c.lines, line)
	c.persist(ctx)
	return nil
}

// RemoveItem drops every line for the product, in both modes. Removing
// an absent product is a no-op.
func (c *RentalCart) RemoveItem(ctx context.Context, productID string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	c.persist(ctx)
}

// SetQuantity updates the quantity of the (product, mode) line. A
// non-positive quantity removes the product entirely. Absent lines are
// a no-op.
func (c *RentalCart) SetQuantity(ctx context.Context, productID string, mode enums.CartMode, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(ctx, productID)
		return
	}
	if line := c.findLine(productID, mode); line != nil {
		line.Quantity = quantity
		c.persist(ctx)
	}
}

// SetRentalDuration updates the rental line's duration and refreshes
// its cached total. The per-unit rate keeps its add-time value.
func (c *RentalCart) SetRentalDuration(ctx context.Context, productID string, duration int) error {
	if duration < 1 {
		return pkgerrors.New(pkgerrors.CodeInvalidDuration, fmt.Sprintf("rental duration %d is below the 1-unit minimum", duration))
	}
	line := c.findLine(productID, enums.CartModeRental)
	if line == nil {
		return nil
	}
	line.Duration = duration
	line.recomputeRentalTotal()
	c.persist(ctx)
	return nil
}

// Clear empties the cart and its durable slot.
func (c *RentalCart) Clear(ctx context.Context) {
	c.lines = nil
	if err := c.store.Clear(ctx, c.ownerID); err != nil {
		c.logg.Warn(c.logg.WithCartKey(ctx, c.ownerID), fmt.Sprintf("failed to clear cart slot: %v", err))
	}
}

// TotalItemCount sums quantities across all lines.
func (c *RentalCart) TotalItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// TotalPrice is the cart subtotal, before tax and shipping.
func (c *RentalCart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Lines returns a copy of the cart contents in insertion order.
func (c *RentalCart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *RentalCart) findLine(productID string, mode enums.CartMode) *Line {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].Mode == mode {
			return &c.lines[i]
		}
	}
	return nil
}

// persist writes the full snapshot. Failures are surfaced to the log
// only; the mutation that triggered the write has already succeeded.
func (c *RentalCart) persist(ctx context.Context) {
	if err := c.store.Save(ctx, c.ownerID, c.lines); err != nil {
		c.logg.Warn(c.logg.WithCartKey(ctx, c.ownerID), fmt.Sprintf("failed to persist cart snapshot: %v", err))
	}
}
