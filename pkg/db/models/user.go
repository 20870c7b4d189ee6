package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the canonical identity entity. The profile columns mirror
// the storefront signup form.
type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email           string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash    string     `gorm:"column:password_hash;not null"`
	FirstName       string     `gorm:"column:first_name;not null"`
	LastName        string     `gorm:"column:last_name;not null"`
	Phone           *string    `gorm:"column:phone"`
	DateOfBirth     *string    `gorm:"column:date_of_birth"`
	Gender          *string    `gorm:"column:gender"`
	Country         *string    `gorm:"column:country"`
	City            *string    `gorm:"column:city"`
	Address         *string    `gorm:"column:address"`
	AcceptMarketing bool       `gorm:"column:accept_marketing;not null;default:false"`
	IsActive        bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt     *time.Time `gorm:"column:last_login_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an ID when the database default is unavailable
// (the sqlite test driver has no gen_random_uuid).
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
