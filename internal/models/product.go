package models

import "time"

// Product represents a cut of meat a seller has listed for sale.
// Price and Stock are the fields the order workflow cares about; the
// rest is descriptive data shown to buyers while browsing.
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"meatname" gorm:"column:meatname;type:varchar(100);index" validate:"required,min=3,max=100"`
	Details   string    `json:"details" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Address   string    `json:"address" gorm:"type:varchar(255)" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
	Stock     int       `json:"stock" validate:"gte=0"`
	SellerID  uint      `json:"seller" gorm:"column:seller;index"`
	ImageURL  string    `json:"image" gorm:"column:image;type:varchar(512)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
