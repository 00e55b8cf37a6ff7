package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"invoicer/models"
	"invoicer/pkg/billing"
	"invoicer/pkg/pdfgen"
)

type invoiceItemRequest struct {
	Description string           `json:"description"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Unit        string           `json:"unit"`
}

// validateRate rejects tax rates outside 0..100.
func validateRate(rate *decimal.Decimal) bool {
	return rate == nil || (!rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(100)))
}

func createInvoiceHandler(c *gin.Context) {
	var req struct {
		CustomerID     *uint                `json:"customerId"`
		CustomerEmail  string               `json:"customerEmail"`
		IssueDate      string               `json:"issueDate" binding:"required"`
		DueDate        string               `json:"dueDate" binding:"required"`
		Status         string               `json:"status"`
		Currency       string               `json:"currency"`
		Notes          string               `json:"notes"`
		TaxRate        *decimal.Decimal     `json:"taxRate"`
		DiscountAmount *decimal.Decimal     `json:"discountAmount"`
		Items          []invoiceItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Resolve the customer by id or email.
	var customer models.Customer
	switch {
	case req.CustomerID != nil:
		if err := db.First(&customer, *req.CustomerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
	case req.CustomerEmail != "":
		if err := db.Where("email = ?", req.CustomerEmail).First(&customer).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either customerId or customerEmail is required"})
		return
	}

	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	status := billing.StatusDraft
	if req.Status != "" {
		status = billing.Status(req.Status)
		if !billing.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
	}
	currency := "USD"
	if req.Currency != "" {
		if len(req.Currency) != 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency must be a 3-letter code"})
			return
		}
		currency = req.Currency
	}
	if !validateRate(req.TaxRate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tax rate must be between 0 and 100"})
		return
	}
	if req.DiscountAmount != nil && req.DiscountAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount amount must not be negative"})
		return
	}

	invoice := models.Invoice{
		CustomerID: customer.ID,
		Customer:   customer,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Status:     status,
		Currency:   currency,
		Notes:      req.Notes,
	}
	if req.TaxRate != nil {
		invoice.TaxRate = decimal.NullDecimal{Decimal: req.TaxRate.Round(billing.AmountScale), Valid: true}
	}
	if req.DiscountAmount != nil {
		invoice.DiscountAmount = decimal.NullDecimal{Decimal: req.DiscountAmount.Round(billing.AmountScale), Valid: true}
	}

	for _, itemReq := range req.Items {
		if itemReq.Description == "" || itemReq.Quantity == 0 || itemReq.UnitPrice == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Each item must have description, quantity, and unitPrice"})
			return
		}
		if itemReq.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantity must be positive"})
			return
		}
		if itemReq.UnitPrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item unit price must not be negative"})
			return
		}
		invoice.Items = append(invoice.Items,
			models.NewInvoiceItem(itemReq.Description, itemReq.Quantity, itemReq.UnitPrice.Round(billing.AmountScale), itemReq.Unit))
	}

	invoice.CalculateTotals()
	if invoice.TotalAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount amount exceeds invoice total"})
		return
	}

	if err := createInvoiceWithNumber(&invoice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Invoice created successfully",
		"invoice": invoiceJSON(invoice, false),
	})
}

func listInvoicesHandler(c *gin.Context) {
	q := db.Preload("Customer").Preload("Items")
	if status := c.Query("status"); status != "" {
		if !billing.ValidStatus(billing.Status(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		q = q.Where("status = ?", status).Order("created_at DESC")
	} else if customerID := c.Query("customerId"); customerID != "" {
		q = q.Where("customer_id = ?", customerID).Order("created_at DESC")
	} else {
		q = q.Order("created_at DESC")
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	data := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, invoiceJSON(inv, true))
	}
	c.JSON(http.StatusOK, gin.H{"invoices": data})
}

// listOverdueInvoicesHandler uses the derived condition (due date passed,
// not settled) as the source of truth; the stored status alone is not
// trusted for this listing.
func listOverdueInvoicesHandler(c *gin.Context) {
	var invoices []models.Invoice
	err := db.Preload("Customer").Preload("Items").
		Where("due_date < ?", time.Now()).
		Where("status NOT IN ?", []billing.Status{billing.StatusPaid, billing.StatusCancelled}).
		Order("due_date ASC").
		Find(&invoices).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	data := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, invoiceJSON(inv, true))
	}
	c.JSON(http.StatusOK, gin.H{"invoices": data})
}

func getInvoiceHandler(c *gin.Context) {
	var invoice models.Invoice
	if err := db.Preload("Customer").Preload("Items").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice, true)})
}

func updateInvoiceHandler(c *gin.Context) {
	var invoice models.Invoice
	if err := db.Preload("Customer").Preload("Items").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var req struct {
		Status         *string          `json:"status"`
		IssueDate      *string          `json:"issueDate"`
		DueDate        *string          `json:"dueDate"`
		Notes          *string          `json:"notes"`
		TaxRate        *decimal.Decimal `json:"taxRate"`
		DiscountAmount *decimal.Decimal `json:"discountAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != nil {
		if err := billing.Transition(invoice.Status, billing.Status(*req.Status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		invoice.Status = billing.Status(*req.Status)
	}
	if req.IssueDate != nil {
		t, err := time.Parse(dateLayout, *req.IssueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue date format. Use YYYY-MM-DD"})
			return
		}
		invoice.IssueDate = t
	}
	if req.DueDate != nil {
		t, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format. Use YYYY-MM-DD"})
			return
		}
		invoice.DueDate = t
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.TaxRate != nil {
		if !validateRate(req.TaxRate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tax rate must be between 0 and 100"})
			return
		}
		invoice.TaxRate = decimal.NullDecimal{Decimal: req.TaxRate.Round(billing.AmountScale), Valid: true}
	}
	if req.DiscountAmount != nil {
		if req.DiscountAmount.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount amount must not be negative"})
			return
		}
		invoice.DiscountAmount = decimal.NullDecimal{Decimal: req.DiscountAmount.Round(billing.AmountScale), Valid: true}
	}

	invoice.CalculateTotals()
	if invoice.TotalAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount amount exceeds invoice total"})
		return
	}

	if err := db.Save(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice updated successfully",
		"invoice": invoiceJSON(invoice, false),
	})
}

// deleteInvoiceHandler removes the invoice; items go with it (composition,
// enforced by the cascading FK).
func deleteInvoiceHandler(c *gin.Context) {
	var invoice models.Invoice
	if err := db.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	if err := db.Delete(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

func invoicePDFHandler(c *gin.Context) {
	var invoice models.Invoice
	if err := db.Preload("Customer").Preload("Items").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	data, err := pdfgen.Render(&invoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+invoice.InvoiceNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
