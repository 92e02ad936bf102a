package models

import "time"

// Order statuses. "delivered" is terminal: the order row is removed
// rather than kept with that status.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
)

// ValidStatus reports whether s is one of the recognized order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Order represents a buyer's purchase of a single product. TotalPrice is
// snapshotted at placement time, so later price changes on the product do
// not alter past orders.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID  uint      `json:"product_id" gorm:"column:product_id;index"`
	BuyerID    uint      `json:"buyer_id" gorm:"column:buyer_id;index"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price" gorm:"column:total_price"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:pending"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
