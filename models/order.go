package models

import (
	"time"
)

// Order is one meal claim. Claims are append-only: never updated, removed
// only by a full data clear. The calendar day of CreatedAt carries the
// one-claim-per-day rule; there is no separate date column.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
