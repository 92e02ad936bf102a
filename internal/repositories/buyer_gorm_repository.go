package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// GORMBuyerRepository is a GORM implementation of BuyerRepository.
type GORMBuyerRepository struct {
	db *gorm.DB
}

// NewGORMBuyerRepository creates a new instance of GORMBuyerRepository.
func NewGORMBuyerRepository(db *gorm.DB) *GORMBuyerRepository {
	return &GORMBuyerRepository{
		db: db,
	}
}

// Create creates a new buyer account in the database. The unique index
// on email is the authority on duplicates, so a violation maps to
// ErrDuplicateEmail instead of surfacing as a storage failure.
func (r *GORMBuyerRepository) Create(buyer *models.Buyer) error {
	if err := r.db.Create(buyer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create buyer: %w", err)
	}
	return nil
}

// GetByEmail retrieves a buyer by their email from the database.
func (r *GORMBuyerRepository) GetByEmail(email string) (*models.Buyer, error) {
	var buyer models.Buyer
	if err := r.db.First(&buyer, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get buyer by email %s: %w", email, err)
	}
	return &buyer, nil
}

// GetByID retrieves a buyer by their ID from the database.
func (r *GORMBuyerRepository) GetByID(id uint) (*models.Buyer, error) {
	var buyer models.Buyer
	if err := r.db.First(&buyer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get buyer %d: %w", id, err)
	}
	return &buyer, nil
}
