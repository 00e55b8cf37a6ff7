package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"invoicer/models"
	"invoicer/pkg/billing"
)

func reportSummaryHandler(c *gin.Context) {
	var totalInvoices int64
	if err := db.Model(&models.Invoice{}).Count(&totalInvoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	var totalRevenue decimal.Decimal
	if err := db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	// Overdue by the derived condition, same as the overdue listing.
	var overdue []models.Invoice
	if err := db.Where("due_date < ?", time.Now()).
		Where("status NOT IN ?", []billing.Status{billing.StatusPaid, billing.StatusCancelled}).
		Find(&overdue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	overdueAmount := billing.Zero()
	for _, inv := range overdue {
		overdueAmount = billing.Add(overdueAmount, inv.TotalAmount)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var statusCounts []statusCount
	if err := db.Model(&models.Invoice{}).
		Select("status, COUNT(id) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	statusSummary := make(map[string]int64, len(statusCounts))
	for _, sc := range statusCounts {
		statusSummary[sc.Status] = sc.Count
	}

	var totalCustomers int64
	if err := db.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalInvoices": totalInvoices,
		"totalRevenue":  formatAmount(totalRevenue),
		"overdueInvoices": gin.H{
			"count":       len(overdue),
			"totalAmount": formatAmount(overdueAmount),
		},
		"invoicesByStatus": statusSummary,
		"totalCustomers":   totalCustomers,
		"generatedAt":      formatTimestamp(time.Now()),
	})
}

// reportAllInvoicesHandler is the full export: every invoice with customer
// and items inline.
func reportAllInvoicesHandler(c *gin.Context) {
	var invoices []models.Invoice
	if err := db.Preload("Customer").Preload("Items").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	data := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, invoiceJSON(inv, true))
	}
	c.JSON(http.StatusOK, data)
}
