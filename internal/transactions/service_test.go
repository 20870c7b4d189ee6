package transactions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTransactionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS transactions (
  id TEXT PRIMARY KEY,
  reference TEXT NOT NULL UNIQUE,
  user_id TEXT NOT NULL,
  user_email TEXT NOT NULL,
  items TEXT NOT NULL DEFAULT '[]',
  subtotal NUMERIC NOT NULL DEFAULT 0,
  tax_amount NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL DEFAULT 0,
  currency TEXT NOT NULL DEFAULT 'COP',
  shipping TEXT,
  payment_method TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'completed',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func sampleItems() types.TransactionItems {
	return types.TransactionItems{
		{
			ProductID:   "1",
			ProductName: "Laptop Profesional MacBook Pro",
			SellerName:  "TechnoStore Colombia",
			Condition:   enums.ProductConditionExcellent,
			Location:    "Bogotá, Cundinamarca",
			Mode:        enums.CartModeSale,
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(11500000),
			LineTotal:   decimal.NewFromInt(11500000),
		},
		{
			ProductID:      "5",
			ProductName:    "Licuadora de Alta Potencia Vitamix",
			SellerName:     "CocinaTop Colombia",
			Condition:      enums.ProductConditionGood,
			Location:       "Barranquilla, Atlántico",
			Mode:           enums.CartModeRental,
			Quantity:       1,
			UnitPrice:      decimal.NewFromInt(1890000),
			RentalDuration: 3,
			RentalUnit:     enums.DurationUnitDays,
			RentalRate:     decimal.NewFromInt(189000),
			RentalTotal:    decimal.NewFromInt(567000),
			LineTotal:      decimal.NewFromInt(567000),
		},
	}
}

func TestCreateAndListByUser(t *testing.T) {
	db := setupTransactionsTestDB(t)
	svc, err := NewService(db)
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, nil, CreateTransactionInput{
		UserID:        userID,
		UserEmail:     "maria@example.com",
		Items:         sampleItems(),
		Subtotal:      decimal.NewFromInt(12067000),
		TaxAmount:     decimal.NewFromInt(1206700),
		Total:         decimal.NewFromInt(13273700),
		Shipping:      types.ShippingInfo{FullName: "María Gómez", Address: "Calle 80 #12-34", City: "Bogotá"},
		PaymentMethod: "card",
		Type:          enums.TransactionTypeMixed,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Reference, "TXN-"))
	assert.Equal(t, enums.TransactionStatusCompleted, created.Status)
	assert.Equal(t, enums.CurrencyCOP, created.Currency)

	listed, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.Reference, listed[0].Reference)
	require.Len(t, listed[0].Items, 2)
	assert.Equal(t, "Laptop Profesional MacBook Pro", listed[0].Items[0].ProductName)
	assert.True(t, listed[0].Items[1].RentalTotal.Equal(decimal.NewFromInt(567000)))

	other, err := svc.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Len(t, other, 0)
}

func TestCreateValidatesInput(t *testing.T) {
	db := setupTransactionsTestDB(t)
	svc, err := NewService(db)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Create(ctx, nil, CreateTransactionInput{
		UserEmail: "maria@example.com",
		Items:     sampleItems(),
		Type:      enums.TransactionTypeMixed,
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.Create(ctx, nil, CreateTransactionInput{
		UserID:    uuid.New(),
		UserEmail: "maria@example.com",
		Type:      enums.TransactionTypeMixed,
	})
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.Create(ctx, nil, CreateTransactionInput{
		UserID:    uuid.New(),
		UserEmail: "maria@example.com",
		Items:     sampleItems(),
		Type:      enums.TransactionType("barter"),
	})
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestDeriveType(t *testing.T) {
	sale := types.TransactionItem{Mode: enums.CartModeSale}
	rental := types.TransactionItem{Mode: enums.CartModeRental}

	assert.Equal(t, enums.TransactionTypePurchase, DeriveType(types.TransactionItems{sale}))
	assert.Equal(t, enums.TransactionTypeRental, DeriveType(types.TransactionItems{rental}))
	assert.Equal(t, enums.TransactionTypeMixed, DeriveType(types.TransactionItems{sale, rental}))
}

func TestNewReferenceShape(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ref := NewReference(now)

	parts := strings.SplitN(ref, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "TXN", parts[0])
	assert.Equal(t, "1788091200000", parts[1])
	assert.Len(t, parts[2], 9)

	assert.NotEqual(t, NewReference(now), NewReference(now))
}
