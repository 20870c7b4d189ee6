package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/alquigo/alquigo-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Phone           *string    `json:"phone,omitempty"`
	DateOfBirth     *string    `json:"date_of_birth,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	Country         *string    `json:"country,omitempty"`
	City            *string    `json:"city,omitempty"`
	Address         *string    `json:"address,omitempty"`
	AcceptMarketing bool       `json:"accept_marketing"`
	IsActive        bool       `json:"is_active"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	Phone           *string
	DateOfBirth     *string
	Gender          *string
	Country         *string
	City            *string
	Address         *string
	AcceptMarketing bool
	IsActive        *bool
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		DateOfBirth:     u.DateOfBirth,
		Gender:          u.Gender,
		Country:         u.Country,
		City:            u.City,
		Address:         u.Address,
		AcceptMarketing: u.AcceptMarketing,
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return &models.User{
		Email:           c.Email,
		PasswordHash:    c.PasswordHash,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Phone:           c.Phone,
		DateOfBirth:     c.DateOfBirth,
		Gender:          c.Gender,
		Country:         c.Country,
		City:            c.City,
		Address:         c.Address,
		AcceptMarketing: c.AcceptMarketing,
		IsActive:        isActive,
	}
}
