package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advertisement represents a listing owned by a user.
type Advertisement struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null;index"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;index"`
	Author      string          `json:"author" gorm:"size:120;not null;index"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
