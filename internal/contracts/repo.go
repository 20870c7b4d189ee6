package contracts

import (
	"context"

	"github.com/alquigo/alquigo-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes contract persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contracts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a contract row.
func (r *Repository) Create(ctx context.Context, contract *models.Contract) (*models.Contract, error) {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return nil, err
	}
	return contract, nil
}

// ListByUser returns the user's contracts, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindByReference loads a contract by its CTR reference.
func (r *Repository) FindByReference(ctx context.Context, reference string) (*models.Contract, error) {
	var contract models.Contract
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&contract).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}
