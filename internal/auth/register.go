package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/alquigo/alquigo-backend/internal/users"
	"github.com/alquigo/alquigo-backend/pkg/config"
	"github.com/alquigo/alquigo-backend/pkg/db"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/security"
	"gorm.io/gorm"
)

// RegisterRequest carries the storefront signup form.
type RegisterRequest struct {
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8"`
	Phone           *string `json:"phone,omitempty"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	Country         *string `json:"country,omitempty"`
	City            *string `json:"city,omitempty"`
	Address         *string `json:"address,omitempty"`
	AcceptMarketing bool    `json:"accept_marketing"`
	AcceptTerms     bool    `json:"accept_terms"`
}

// RegisterService handles new account creation.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) error
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !req.AcceptTerms {
		return pkgerrors.New(pkgerrors.CodeValidation, "accept_terms must be true")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		if _, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:           email,
			PasswordHash:    passwordHash,
			FirstName:       strings.TrimSpace(req.FirstName),
			LastName:        strings.TrimSpace(req.LastName),
			Phone:           req.Phone,
			DateOfBirth:     req.DateOfBirth,
			Gender:          req.Gender,
			Country:         req.Country,
			City:            req.City,
			Address:         req.Address,
			AcceptMarketing: req.AcceptMarketing,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
}
