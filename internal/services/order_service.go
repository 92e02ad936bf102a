package services

import (
	"errors"
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

var (
	// ErrInvalidQuantity is returned when an order is placed with a zero
	// or negative quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrInvalidStatus is returned for a status outside the recognized
	// set.
	ErrInvalidStatus = errors.New("unrecognized order status")
)

// OrderService handles the order placement and lifecycle workflow. The
// atomic check-reserve-record sequence lives in OrderRepository.Place;
// this service validates input, enforces the ownership policy and
// publishes lifecycle events.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// PlaceOrder reserves quantity units of the product for the buyer and
// records the order. The price is snapshotted into the order at placement
// time. Either both the order row and the stock decrement commit, or
// neither does.
func (s *OrderService) PlaceOrder(buyerID, productID uint, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	order := &models.Order{
		ProductID: productID,
		BuyerID:   buyerID,
		Quantity:  quantity,
	}
	if err := s.orderRepo.Place(order); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.OrderEvent{
		Event:      "order.created",
		OrderID:    order.ID,
		ProductID:  order.ProductID,
		BuyerID:    order.BuyerID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
	})

	return order, nil
}

// GetOrderByID retrieves a single order. A buyer can only see their own
// orders; a mismatch reports not-found so order ids don't leak.
func (s *OrderService) GetOrderByID(caller *Identity, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if caller.Role == RoleBuyer && order.BuyerID != caller.ID {
		return nil, repositories.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns the orders visible to the caller: all of them for a
// seller, only their own for a buyer.
func (s *OrderService) ListOrders(caller *Identity) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if caller.Role == RoleSeller {
		return orders, nil
	}
	own := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.BuyerID == caller.ID {
			own = append(own, order)
		}
	}
	return own, nil
}

// UpdateOrderStatus transitions an order to the given status. "delivered"
// is terminal: the order row is deleted rather than kept, and the
// returned deleted flag is true. Statuses outside the recognized set are
// rejected.
func (s *OrderService) UpdateOrderStatus(caller *Identity, id uint, status string) (deleted bool, err error) {
	if !models.ValidStatus(status) {
		return false, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	// Ownership check up front. If the order vanishes between this read
	// and the write, the zero-affected-rows check below still reports
	// not-found.
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if caller.Role == RoleBuyer && order.BuyerID != caller.ID {
		return false, repositories.ErrOrderNotFound
	}

	if status == models.StatusDelivered {
		if err := s.orderRepo.Delete(id); err != nil {
			return false, err
		}
		s.publishEvent(rabbitmq.OrderEvent{
			Event:   "order.delivered",
			OrderID: id,
		})
		return true, nil
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return false, err
	}
	s.publishEvent(rabbitmq.OrderEvent{
		Event:   "order.status_changed",
		OrderID: id,
		Status:  status,
	})
	return false, nil
}

// publishEvent publishes best effort: a broker outage must not fail an
// order operation that already committed.
func (s *OrderService) publishEvent(event rabbitmq.OrderEvent) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishOrderEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for order %d: %v", event.Event, event.OrderID, err)
	}
}
