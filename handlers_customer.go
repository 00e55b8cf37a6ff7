package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/models"
)

func createCustomerHandler(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	var existing models.Customer
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Customer with this email already exists"})
		return
	}
	customer := models.Customer{Name: req.Name, Email: req.Email}
	if err := db.Create(&customer).Error; err != nil {
		if isUniqueConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Customer with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created successfully",
		"customer": customerJSON(customer),
	})
}

func listCustomersHandler(c *gin.Context) {
	var customers []models.Customer
	if err := db.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	data := make([]gin.H, 0, len(customers))
	for _, cust := range customers {
		data = append(data, customerJSON(cust))
	}
	c.JSON(http.StatusOK, data)
}

func getCustomerHandler(c *gin.Context) {
	var customer models.Customer
	if err := db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customerJSON(customer))
}

// deleteCustomerHandler hard-deletes a customer. Invoices keep a mandatory
// reference, so deletion is rejected while any invoice points at the
// customer instead of letting the FK blow up mid-delete.
func deleteCustomerHandler(c *gin.Context) {
	var customer models.Customer
	if err := db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	var invoiceCount int64
	if err := db.Model(&models.Invoice{}).Where("customer_id = ?", customer.ID).Count(&invoiceCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if invoiceCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Customer has invoices and cannot be deleted"})
		return
	}
	if err := db.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
