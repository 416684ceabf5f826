package models

// Alternate pairs a customer with their designated substitute. The unique
// columns make the pairing partial one-to-one: each customer has at most one
// alternate and backs up at most one other customer.
type Alternate struct {
	ID                  uint     `gorm:"primaryKey" json:"id"`
	CustomerID          uint     `gorm:"not null;uniqueIndex" json:"customer_id"`
	Customer            Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	AlternateCustomerID uint     `gorm:"not null;uniqueIndex" json:"alternate_customer_id"`
	AlternateCustomer   Customer `gorm:"foreignKey:AlternateCustomerID;constraint:OnDelete:CASCADE" json:"-"`
}
