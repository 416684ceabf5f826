package models

import (
	"time"
)

// Customer is an employee eligible for meal claims. The code is the only
// identifier operators ever type in; the surrogate ID stays internal.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Code      string    `gorm:"type:char(6);not null;uniqueIndex" json:"code"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
