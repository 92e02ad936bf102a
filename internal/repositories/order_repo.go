package repositories

import (
	"pasar/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Place records the order and decrements the product's stock as one
// atomic unit: either both writes commit or neither does. It fills in the
// order's TotalPrice (price at placement time × quantity) and initial
// status. UpdateStatus and Delete report ErrOrderNotFound when no row was
// affected.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	Place(order *models.Order) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
