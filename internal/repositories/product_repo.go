package repositories

import (
	"pasar/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// DecrementStock must be atomic with respect to concurrent decrements on
// the same product: implementations apply it as a single conditional
// update (stock = stock - quantity only while stock >= quantity), never
// as a separate read followed by a write.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	SearchByName(name string) ([]models.Product, error)
	GetStockAndPrice(id uint) (price float64, stock int, err error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	DecrementStock(id uint, quantity int) error
}
