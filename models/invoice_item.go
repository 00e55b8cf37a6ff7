package models

import (
	"github.com/shopspring/decimal"

	"invoicer/pkg/billing"
)

// InvoiceItem is one line of an invoice. LineTotal is derived from quantity
// and unit price and is never set independently: both fields only change
// together through SetPricing so the product invariant cannot drift.
type InvoiceItem struct {
	ID          uint            `gorm:"primaryKey"`
	InvoiceID   uint            `gorm:"index;not null"`
	Description string          `gorm:"size:255;not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Unit        string          `gorm:"size:100"`
}

// NewInvoiceItem builds an item with its line total already derived.
func NewInvoiceItem(description string, quantity int64, unitPrice decimal.Decimal, unit string) InvoiceItem {
	it := InvoiceItem{Description: description, Unit: unit}
	it.SetPricing(quantity, unitPrice)
	return it
}

// SetPricing applies quantity and unit price in one step and recomputes the
// line total as part of the same change.
func (it *InvoiceItem) SetPricing(quantity int64, unitPrice decimal.Decimal) {
	it.Quantity = quantity
	it.UnitPrice = unitPrice
	it.LineTotal = billing.LineTotal(quantity, unitPrice)
}
