package repositories

import "pasar/internal/models"

// SellerRepository defines the interface for seller account data access.
type SellerRepository interface {
	Create(seller *models.Seller) error
	GetByEmail(email string) (*models.Seller, error)
	GetByID(id uint) (*models.Seller, error)
}
