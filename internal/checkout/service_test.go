package checkout

import (
	"context"
	"testing"

	"github.com/alquigo/alquigo-backend/internal/cart"
	"github.com/alquigo/alquigo-backend/internal/catalog"
	"github.com/alquigo/alquigo-backend/internal/contracts"
	"github.com/alquigo/alquigo-backend/internal/transactions"
	"github.com/alquigo/alquigo-backend/internal/users"
	"github.com/alquigo/alquigo-backend/pkg/config"
	"github.com/alquigo/alquigo-backend/pkg/db"
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

type stubCheckoutMetrics struct {
	types []string
}

func (m *stubCheckoutMetrics) IncCheckout(transactionType string) {
	m.types = append(m.types, transactionType)
}

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
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
);
CREATE TABLE IF NOT EXISTS contracts (
  id TEXT PRIMARY KEY,
  reference TEXT NOT NULL UNIQUE,
  user_id TEXT NOT NULL,
  transaction_id TEXT NOT NULL,
  items TEXT NOT NULL DEFAULT '[]',
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT,
  total NUMERIC NOT NULL DEFAULT 0,
  content TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func buildCheckoutService(t *testing.T, conn *gorm.DB, metrics *stubCheckoutMetrics) Service {
	t.Helper()

	txnSvc, err := transactions.NewService(conn)
	require.NoError(t, err)
	contractSvc, err := contracts.NewService(conn)
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{
		DB:           db.NewFromConn(conn),
		Transactions: txnSvc,
		Contracts:    contractSvc,
		Config:       config.CheckoutConfig{TaxRate: 0.10},
		Metrics:      metrics,
	})
	require.NoError(t, err)
	return svc
}

func checkoutUser() *users.UserDTO {
	phone := "+57 301 1234567"
	return &users.UserDTO{
		ID:        uuid.New(),
		FirstName: "María",
		LastName:  "Gómez",
		Email:     "maria@example.com",
		Phone:     &phone,
	}
}

func checkoutShipping() types.ShippingInfo {
	return types.ShippingInfo{
		FullName: "María Gómez",
		Address:  "Calle 93 #11-27",
		City:     "Bogotá",
		Country:  "Colombia",
	}
}

func saleLine(id string, price int64) cart.Line {
	return cart.Line{
		Product: catalog.Product{
			ID:               id,
			Name:             "Producto " + id,
			Price:            decimal.NewFromInt(price),
			Category:         "electrónicos",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Bogotá, Cundinamarca",
			Seller:           catalog.Seller{ID: "seller1", Name: "TechnoStore Colombia"},
			AvailableForSale: true,
		},
		Mode:     enums.CartModeSale,
		Quantity: 1,
	}
}

func rentalLine(id string, price int64, duration int, unit enums.DurationUnit) cart.Line {
	product := catalog.Product{
		ID:               id,
		Name:             "Producto " + id,
		Price:            decimal.NewFromInt(price),
		Category:         "hogar",
		Condition:        enums.ProductConditionGood,
		Location:         "Medellín, Antioquia",
		Seller:           catalog.Seller{ID: "seller2", Name: "CocinaTop Colombia"},
		AvailableForRent: true,
	}
	rate, _ := cart.DeriveRentalRate(product.Price, unit)
	return cart.Line{
		Product:  product,
		Mode:     enums.CartModeRental,
		Quantity: 1,
		Duration: duration,
		Unit:     unit,
		Rate:     rate,
		Total:    rate.Mul(decimal.NewFromInt(int64(duration))),
	}
}

func TestCheckoutMixedCartCreatesTransactionAndContract(t *testing.T) {
	conn := setupCheckoutTestDB(t)
	metrics := &stubCheckoutMetrics{}
	svc := buildCheckoutService(t, conn, metrics)
	user := checkoutUser()

	// Sale 200000 plus a 3-day rental of a 100000 product (rate 10000).
	lines := []cart.Line{
		saleLine("1", 200000),
		rentalLine("5", 100000, 3, enums.DurationUnitDays),
	}

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		User:          user,
		Lines:         lines,
		Shipping:      checkoutShipping(),
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
	require.NotNil(t, result.Contract)

	txn := result.Transaction
	assert.Equal(t, enums.TransactionTypeMixed, txn.Type)
	assert.Equal(t, enums.TransactionStatusCompleted, txn.Status)
	assert.True(t, txn.Subtotal.Equal(decimal.NewFromInt(230000)), "subtotal %s", txn.Subtotal)
	assert.True(t, txn.TaxAmount.Equal(decimal.NewFromInt(23000)), "tax %s", txn.TaxAmount)
	assert.True(t, txn.Total.Equal(decimal.NewFromInt(253000)), "total %s", txn.Total)
	assert.Equal(t, enums.CurrencyCOP, txn.Currency)
	require.Len(t, txn.Items, 2)

	contract := result.Contract
	assert.Equal(t, txn.ID, contract.TransactionID)
	assert.Equal(t, "María Gómez", contract.CustomerName)
	assert.Contains(t, contract.Content, "CONTRATO DE COMPRA/ALQUILER - AlquiGo")
	assert.Contains(t, contract.Content, "Calle 93 #11-27, Bogotá, Colombia")

	assert.Equal(t, []string{"mixed"}, metrics.types)
}

func TestCheckoutSaleOnlySkipsContract(t *testing.T) {
	conn := setupCheckoutTestDB(t)
	metrics := &stubCheckoutMetrics{}
	svc := buildCheckoutService(t, conn, metrics)
	user := checkoutUser()

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		User:          user,
		Lines:         []cart.Line{saleLine("6", 85000)},
		Shipping:      checkoutShipping(),
		PaymentMethod: "pse",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
	assert.Nil(t, result.Contract)
	assert.Equal(t, enums.TransactionTypePurchase, result.Transaction.Type)

	var contractCount int64
	require.NoError(t, conn.Table("contracts").Count(&contractCount).Error)
	assert.Zero(t, contractCount)
	assert.Equal(t, []string{"purchase"}, metrics.types)
}

func TestCheckoutRentalOnlyUsesShippingNameFallback(t *testing.T) {
	conn := setupCheckoutTestDB(t)
	svc := buildCheckoutService(t, conn, &stubCheckoutMetrics{})
	user := checkoutUser()

	shipping := checkoutShipping()
	shipping.FullName = ""

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		User:          user,
		Lines:         []cart.Line{rentalLine("15", 4200000, 2, enums.DurationUnitWeeks)},
		Shipping:      shipping,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Contract)
	assert.Equal(t, enums.TransactionTypeRental, result.Transaction.Type)
	assert.Equal(t, "María Gómez", result.Contract.CustomerName)
}

func TestCheckoutValidation(t *testing.T) {
	conn := setupCheckoutTestDB(t)
	svc := buildCheckoutService(t, conn, &stubCheckoutMetrics{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Lines:    []cart.Line{saleLine("1", 200000)},
		Shipping: checkoutShipping(),
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())

	_, err = svc.Checkout(context.Background(), CheckoutRequest{
		User:     checkoutUser(),
		Shipping: checkoutShipping(),
	})
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	var txnCount int64
	require.NoError(t, conn.Table("transactions").Count(&txnCount).Error)
	assert.Zero(t, txnCount)
}
