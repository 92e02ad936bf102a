package repositories

import (
	"sync"
	"time"

	"pasar/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It needs the product repository for Place: the stock decrement goes
// through MockProductRepository.DecrementStock, which is the atomic
// check-and-subtract, and the order insert into the map cannot fail, so
// the placement as a whole is all-or-nothing.
type MockOrderRepository struct {
	orders   map[uint]models.Order
	products *MockProductRepository
	nextID   uint
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[uint]models.Order),
		products: products,
		nextID:   1,
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// Place snapshots the product price, decrements stock and records the
// order.
func (r *MockOrderRepository) Place(order *models.Order) error {
	price, _, err := r.products.GetStockAndPrice(order.ProductID)
	if err != nil {
		return err
	}
	if err := r.products.DecrementStock(order.ProductID, order.Quantity); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.TotalPrice = price * float64(order.Quantity)
	order.Status = models.StatusPending
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Delete removes an order by its ID.
func (r *MockOrderRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}
