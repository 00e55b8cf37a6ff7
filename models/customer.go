package models

import "time"

// Customer is a billable party. Invoices hold a mandatory reference to it,
// so a customer with invoices cannot be deleted.
type Customer struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
}
