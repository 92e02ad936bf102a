package repositories

import "pasar/internal/models"

// BuyerRepository defines the interface for buyer account data access.
type BuyerRepository interface {
	Create(buyer *models.Buyer) error
	GetByEmail(email string) (*models.Buyer, error)
	GetByID(id uint) (*models.Buyer, error)
}
