package checkout

import (
	"context"
	"fmt"

	"github.com/alquigo/alquigo-backend/internal/cart"
	"github.com/alquigo/alquigo-backend/internal/contracts"
	"github.com/alquigo/alquigo-backend/internal/transactions"
	"github.com/alquigo/alquigo-backend/internal/users"
	"github.com/alquigo/alquigo-backend/pkg/config"
	"github.com/alquigo/alquigo-backend/pkg/db"
	"github.com/alquigo/alquigo-backend/pkg/db/models"
	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutRequest is the payload the controller assembles from the
// authenticated user and their hydrated cart.
type CheckoutRequest struct {
	User          *users.UserDTO
	Lines         []cart.Line
	Shipping      types.ShippingInfo
	PaymentMethod string
}

// CheckoutResult returns the persisted transaction and, for rentals,
// the generated contract.
type CheckoutResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Contract    *models.Contract    `json:"contract,omitempty"`
}

// Service finalizes a cart into a transaction (and contract).
type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

type checkoutRecorder interface {
	IncCheckout(transactionType string)
}

type service struct {
	db           *db.Client
	transactions transactions.Service
	contracts    contracts.Service
	taxRate      decimal.Decimal
	metrics      checkoutRecorder
}

// ServiceParams bundles the checkout dependencies.
type ServiceParams struct {
	DB           *db.Client
	Transactions transactions.Service
	Contracts    contracts.Service
	Config       config.CheckoutConfig
	Metrics      checkoutRecorder
}

// NewService constructs the checkout orchestrator.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if params.Transactions == nil {
		return nil, fmt.Errorf("transactions service is required")
	}
	if params.Contracts == nil {
		return nil, fmt.Errorf("contracts service is required")
	}
	return &service{
		db:           params.DB,
		transactions: params.Transactions,
		contracts:    params.Contracts,
		taxRate:      decimal.NewFromFloat(params.Config.TaxRate),
		metrics:      params.Metrics,
	}, nil
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if req.User == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "checkout requires an authenticated user")
	}
	if len(req.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := snapshotItems(req.Lines)
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	taxAmount := subtotal.Mul(s.taxRate).Round(2)
	total := subtotal.Add(taxAmount)
	txnType := transactions.DeriveType(items)

	result := &CheckoutResult{}
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		txn, err := s.transactions.Create(ctx, tx, transactions.CreateTransactionInput{
			UserID:        req.User.ID,
			UserEmail:     req.User.Email,
			Items:         items,
			Subtotal:      subtotal,
			TaxAmount:     taxAmount,
			Total:         total,
			Currency:      enums.CurrencyCOP,
			Shipping:      req.Shipping,
			PaymentMethod: req.PaymentMethod,
			Type:          txnType,
		})
		if err != nil {
			return err
		}
		result.Transaction = txn

		if txnType == enums.TransactionTypeRental || txnType == enums.TransactionTypeMixed {
			contract, err := s.contracts.Create(ctx, tx, contracts.CreateContractInput{
				UserID:        req.User.ID,
				TransactionID: txn.ID,
				CustomerName:  customerName(req),
				CustomerEmail: req.User.Email,
				CustomerPhone: req.User.Phone,
				Address:       req.Shipping.OneLine(),
				Items:         items,
				Total:         total,
				Currency:      enums.CurrencyCOP,
			})
			if err != nil {
				return err
			}
			result.Contract = contract
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncCheckout(txnType.String())
	}
	return result, nil
}

func customerName(req CheckoutRequest) string {
	if name := req.Shipping.FullName; name != "" {
		return name
	}
	return req.User.FirstName + " " + req.User.LastName
}

// snapshotItems freezes the cart lines into the stored transaction shape.
func snapshotItems(lines []cart.Line) types.TransactionItems {
	items := make(types.TransactionItems, 0, len(lines))
	for _, line := range lines {
		item := types.TransactionItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			SellerName:  line.Product.Seller.Name,
			Condition:   line.Product.Condition,
			Location:    line.Product.Location,
			Mode:        line.Mode,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			LineTotal:   line.LineTotal(),
		}
		if line.Mode == enums.CartModeRental {
			item.RentalDuration = line.Duration
			item.RentalUnit = line.Unit
			item.RentalRate = line.Rate
			item.RentalTotal = line.Total
		}
		items = append(items, item)
	}
	return items
}
