package main

import (
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invoicer/models"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		// Customers first: invoices carry a mandatory FK to them.
		if err := db.AutoMigrate(&models.Customer{}); err != nil {
			log.Printf("migration warning (customers): %v", err)
		}
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Invoice{}); err != nil {
			log.Printf("migration warning (invoices): %v", err)
		}
		if err := db.AutoMigrate(&models.InvoiceItem{}); err != nil {
			log.Printf("migration warning (invoice_items): %v", err)
		}
	}
	seedDB()
}

func seedDB() {
	// Check if admin user exists
	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count)
	if count == 0 {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := models.User{
			Email:          "admin@example.com",
			Name:           "Administrator",
			HashedPassword: hashedPassword,
			Roles:          models.RoleList{"ROLE_ADMIN", "ROLE_USER"},
			Active:         true,
		}
		db.Create(&admin)
		log.Println("Seeded admin user: email=admin@example.com, password=admin123")
	}
}
