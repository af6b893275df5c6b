package model

import "time"

// Token is a single authenticated session. Rows are insert-only: expiry is
// purely time-based and deletion happens via the user foreign key cascade.
type Token struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Value    string    `json:"value" gorm:"uniqueIndex;size:64;not null"`
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	IssuedAt time.Time `json:"issued_at" gorm:"not null"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
