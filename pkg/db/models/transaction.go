package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/alquigo/alquigo-backend/pkg/types"
)

// Transaction persists a completed checkout with its full item snapshot.
// Reference carries the human-facing TXN-... identifier shown to the buyer.
type Transaction struct {
	ID            uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Reference     string                  `gorm:"column:reference;not null;uniqueIndex"`
	UserID        uuid.UUID               `gorm:"column:user_id;type:uuid;not null;index"`
	UserEmail     string                  `gorm:"column:user_email;not null"`
	Items         types.TransactionItems  `gorm:"column:items;type:jsonb;serializer:json"`
	Subtotal      decimal.Decimal         `gorm:"column:subtotal;type:numeric(14,2);not null"`
	TaxAmount     decimal.Decimal         `gorm:"column:tax_amount;type:numeric(14,2);not null"`
	Total         decimal.Decimal         `gorm:"column:total;type:numeric(14,2);not null"`
	Currency      enums.Currency          `gorm:"column:currency;not null;default:'COP'"`
	Shipping      types.ShippingInfo      `gorm:"column:shipping;type:jsonb;serializer:json"`
	PaymentMethod string                  `gorm:"column:payment_method;not null"`
	Type          enums.TransactionType   `gorm:"column:type;not null"`
	Status        enums.TransactionStatus `gorm:"column:status;not null;default:'completed'"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an ID when the database default is unavailable
// (the sqlite test driver has no gen_random_uuid).
func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
