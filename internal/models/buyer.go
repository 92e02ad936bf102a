package models

import "time"

// Buyer represents a purchasing account.
type Buyer struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(30)" validate:"required,min=3,max=30"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=10"`
	PhoneNumber string    `json:"phone_number" gorm:"column:phone_number;type:varchar(20)" validate:"required"`
	Address     string    `json:"address" gorm:"type:varchar(255)" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
