package models

import "time"

// Seller represents a merchant account. Sellers and buyers live in
// separate tables with independent id sequences, so a caller identity is
// always the pair (id, role).
type Seller struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(30)" validate:"required,min=3,max=30"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=10"`
	PhoneNumber string    `json:"phone_number" gorm:"column:phone_number;type:varchar(20)" validate:"required"`
	Address     string    `json:"address" gorm:"type:varchar(255)" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
