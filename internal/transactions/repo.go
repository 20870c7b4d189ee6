package transactions

import (
	"context"

	"github.com/alquigo/alquigo-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes transaction persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a transactions repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a transaction with its item snapshot.
func (r *Repository) Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

// ListByUser returns the user's transactions, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// FindByReference loads a transaction by its TXN reference.
func (r *Repository) FindByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}
