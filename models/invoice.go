package models

import (
	"time"

	"github.com/shopspring/decimal"

	"invoicer/pkg/billing"
)

// Invoice is the financial aggregate. It owns its items exclusively: items
// are created through the invoice, deleted with it, and never reference
// another one. The invoice number is assigned once at creation and never
// changes.
type Invoice struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	InvoiceNumber  string              `gorm:"size:20;not null;uniqueIndex"`
	CustomerID     uint                `gorm:"index;not null"`
	Customer       Customer            `gorm:"foreignKey:CustomerID"`
	IssueDate      time.Time           `gorm:"type:date;not null"`
	DueDate        time.Time           `gorm:"type:date;not null"`
	Status         billing.Status      `gorm:"size:20;not null;default:draft"`
	Subtotal       decimal.Decimal     `gorm:"type:numeric(10,2);not null"`
	TaxRate        decimal.NullDecimal `gorm:"type:numeric(5,2)"`
	TaxAmount      decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	DiscountAmount decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	TotalAmount    decimal.Decimal     `gorm:"type:numeric(10,2);not null"`
	Currency       string              `gorm:"size:3;not null;default:USD"`
	Notes          string              `gorm:"type:text"`
	Items          []InvoiceItem       `gorm:"foreignKey:InvoiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CalculateTotals rederives subtotal, tax amount and total from the items
// in stored order. Idempotent: calling it again without changing items,
// rate or discount yields the same values. Call after every change to
// items, tax rate or discount.
func (inv *Invoice) CalculateTotals() {
	lines := make([]billing.Line, len(inv.Items))
	for i, it := range inv.Items {
		lines[i] = billing.Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	t := billing.Calculate(lines, inv.TaxRate, inv.DiscountAmount)
	inv.Subtotal = t.Subtotal
	inv.TaxAmount = t.TaxAmount
	inv.TotalAmount = t.Total
}

// IsOverdue reports the derived overdue condition: due date passed and not
// settled. This, not the stored status, is the source of truth for overdue
// listings.
func (inv *Invoice) IsOverdue(now time.Time) bool {
	if inv.Status == billing.StatusPaid || inv.Status == billing.StatusCancelled {
		return false
	}
	return inv.DueDate.Before(now)
}
