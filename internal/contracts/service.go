package contracts

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/alquigo/alquigo-backend/pkg/db/models"
	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateContractInput carries the data a checkout hands to the contract
// service.
type CreateContractInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Address       string
	Items         types.TransactionItems
	Total         decimal.Decimal
	Currency      enums.Currency
}

// Service generates and serves purchase/rental agreements.
type Service interface {
	Create(ctx context.Context, tx *gorm.DB, input CreateContractInput) (*models.Contract, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contract, error)
}

type service struct {
	db *gorm.DB
}

// NewService constructs the contracts service.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &service{db: db}, nil
}

func (s *service) Create(ctx context.Context, tx *gorm.DB, input CreateContractInput) (*models.Contract, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.TransactionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction id is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "contract requires at least one item")
	}

	currency := input.Currency
	if currency == "" {
		currency = enums.CurrencyCOP
	}

	now := time.Now().UTC()
	reference := NewReference(now)
	content := Generate(ContractData{
		Reference:     reference,
		GeneratedAt:   now,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		Items:         input.Items,
		Total:         input.Total,
		Currency:      currency,
	})

	conn := s.db
	if tx != nil {
		conn = tx
	}

	contract := &models.Contract{
		Reference:     reference,
		UserID:        input.UserID,
		TransactionID: input.TransactionID,
		Items:         input.Items,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Total:         input.Total,
		Content:       content,
		Status:        enums.ContractStatusActive,
	}
	created, err := NewRepository(conn).Create(ctx, contract)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contract")
	}
	return created, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contract, error) {
	contracts, err := NewRepository(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contracts")
	}
	return contracts, nil
}

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference builds the human-facing contract identifier,
// CTR-<unix millis>-<9 random base36 chars>.
func NewReference(now time.Time) string {
	var b strings.Builder
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := 0; i < 9; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			n = big.NewInt(int64(i % len(referenceAlphabet)))
		}
		b.WriteByte(referenceAlphabet[n.Int64()])
	}
	return fmt.Sprintf("CTR-%d-%s", now.UnixMilli(), b.String())
}
