package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/alquigo/alquigo-backend/pkg/db/models"
	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateTransactionInput carries the computed checkout payload.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	UserEmail     string
	Items         types.TransactionItems
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Currency      enums.Currency
	Shipping      types.ShippingInfo
	PaymentMethod string
	Type          enums.TransactionType
}

// Service records completed checkouts and serves transaction history.
type Service interface {
	Create(ctx context.Context, tx *gorm.DB, input CreateTransactionInput) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

type service struct {
	db *gorm.DB
}

// NewService constructs the transactions service.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &service{db: db}, nil
}

// Create persists a transaction inside the caller's DB transaction when one
// is provided, otherwise on the service's own connection.
func (s *service) Create(ctx context.Context, tx *gorm.DB, input CreateTransactionInput) (*models.Transaction, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction requires at least one item")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown transaction type %q", input.Type))
	}

	currency := input.Currency
	if currency == "" {
		currency = enums.CurrencyCOP
	}

	conn := s.db
	if tx != nil {
		conn = tx
	}

	txn := &models.Transaction{
		Reference:     NewReference(time.Now().UTC()),
		UserID:        input.UserID,
		UserEmail:     input.UserEmail,
		Items:         input.Items,
		Subtotal:      input.Subtotal,
		TaxAmount:     input.TaxAmount,
		Total:         input.Total,
		Currency:      currency,
		Shipping:      input.Shipping,
		PaymentMethod: input.PaymentMethod,
		Type:          input.Type,
		Status:        enums.TransactionStatusCompleted,
	}
	created, err := NewRepository(conn).Create(ctx, txn)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create transaction")
	}
	return created, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	txns, err := NewRepository(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}
	return txns, nil
}

// DeriveType classifies a checkout by the modes present in its items.
func DeriveType(items types.TransactionItems) enums.TransactionType {
	var hasSale, hasRental bool
	for _, item := range items {
		switch item.Mode {
		case enums.CartModeRental:
			hasRental = true
		default:
			hasSale = true
		}
	}
	switch {
	case hasSale && hasRental:
		return enums.TransactionTypeMixed
	case hasRental:
		return enums.TransactionTypeRental
	default:
		return enums.TransactionTypePurchase
	}
}
