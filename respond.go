package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"invoicer/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func formatOptionalTimestamp(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(timestampLayout)
}

// updatedAt is nil until the first update, mirroring the created/updated
// column pair in the schema.
func formatUpdatedAt(created, updated time.Time) interface{} {
	if updated.Equal(created) || updated.IsZero() {
		return nil
	}
	return updated.Format(timestampLayout)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatOptionalAmount(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.StringFixed(2)
}

func userJSON(u models.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"email":       u.Email,
		"name":        u.Name,
		"roles":       []string(u.Roles),
		"isActive":    u.Active,
		"createdAt":   formatTimestamp(u.CreatedAt),
		"lastLoginAt": formatOptionalTimestamp(u.LastLoginAt),
	}
}

func customerJSON(c models.Customer) gin.H {
	return gin.H{
		"id":        c.ID,
		"name":      c.Name,
		"email":     c.Email,
		"createdAt": formatTimestamp(c.CreatedAt),
	}
}

func invoiceItemJSON(it models.InvoiceItem) gin.H {
	return gin.H{
		"id":          it.ID,
		"description": it.Description,
		"quantity":    it.Quantity,
		"unitPrice":   formatAmount(it.UnitPrice),
		"lineTotal":   formatAmount(it.LineTotal),
		"unit":        it.Unit,
	}
}

func invoiceJSON(inv models.Invoice, includeItems bool) gin.H {
	data := gin.H{
		"id":            inv.ID,
		"invoiceNumber": inv.InvoiceNumber,
		"customer": gin.H{
			"id":    inv.Customer.ID,
			"name":  inv.Customer.Name,
			"email": inv.Customer.Email,
		},
		"issueDate":      inv.IssueDate.Format(dateLayout),
		"dueDate":        inv.DueDate.Format(dateLayout),
		"status":         inv.Status,
		"subtotal":       formatAmount(inv.Subtotal),
		"taxAmount":      formatOptionalAmount(inv.TaxAmount),
		"taxRate":        formatOptionalAmount(inv.TaxRate),
		"discountAmount": formatOptionalAmount(inv.DiscountAmount),
		"totalAmount":    formatAmount(inv.TotalAmount),
		"currency":       inv.Currency,
		"notes":          inv.Notes,
		"createdAt":      formatTimestamp(inv.CreatedAt),
		"updatedAt":      formatUpdatedAt(inv.CreatedAt, inv.UpdatedAt),
	}
	if includeItems {
		items := make([]gin.H, 0, len(inv.Items))
		for _, it := range inv.Items {
			items = append(items, invoiceItemJSON(it))
		}
		data["items"] = items
	}
	return data
}
