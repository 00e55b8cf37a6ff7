package main

import "github.com/gin-gonic/gin"

// setupRoutes declares which routes are public and which sit behind the
// token gate. Protection is per route group, not a path-prefix check, so a
// new route under /api is protected unless it is explicitly mounted on the
// public group.
func setupRoutes(r *gin.Engine) {
	public := r.Group("/api/auth")
	public.POST("/register", registerHandler)
	public.POST("/login", loginHandler)

	api := r.Group("/api")
	api.Use(authRequired())

	api.GET("/auth/me", meHandler)
	api.GET("/auth/users", listUsersFullHandler)
	api.GET("/auth/users/:id", getUserFullHandler)

	api.POST("/users", createUserHandler)
	api.GET("/users", listUsersHandler)
	api.GET("/users/:id", getUserHandler)

	api.POST("/customers", createCustomerHandler)
	api.GET("/customers", listCustomersHandler)
	api.GET("/customers/:id", getCustomerHandler)
	api.DELETE("/customers/:id", deleteCustomerHandler)

	api.POST("/invoices", createInvoiceHandler)
	api.GET("/invoices", listInvoicesHandler)
	api.GET("/invoices/overdue", listOverdueInvoicesHandler)
	api.GET("/invoices/:id", getInvoiceHandler)
	api.PUT("/invoices/:id", updateInvoiceHandler)
	api.DELETE("/invoices/:id", deleteInvoiceHandler)
	api.GET("/invoices/:id/pdf", invoicePDFHandler)

	api.GET("/reports/summary", reportSummaryHandler)
	api.GET("/reports/all-invoices", reportAllInvoicesHandler)
}
