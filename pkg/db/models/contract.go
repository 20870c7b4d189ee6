package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/alquigo/alquigo-backend/pkg/types"
)

// Contract stores the generated purchase/rental agreement text together with
// the snapshot it was rendered from. Reference carries the CTR-... identifier
// printed on the document.
type Contract struct {
	ID            uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Reference     string                 `gorm:"column:reference;not null;uniqueIndex"`
	UserID        uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index"`
	TransactionID uuid.UUID              `gorm:"column:transaction_id;type:uuid;not null"`
	Items         types.TransactionItems `gorm:"column:items;type:jsonb;serializer:json"`
	CustomerName  string                 `gorm:"column:customer_name;not null"`
	CustomerEmail string                 `gorm:"column:customer_email;not null"`
	CustomerPhone *string                `gorm:"column:customer_phone"`
	Total         decimal.Decimal        `gorm:"column:total;type:numeric(14,2);not null"`
	Content       string                 `gorm:"column:content;type:text;not null"`
	Status        enums.ContractStatus   `gorm:"column:status;not null;default:'active'"`
	CreatedAt     time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an ID when the database default is unavailable
// (the sqlite test driver has no gen_random_uuid).
func (c *Contract) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
