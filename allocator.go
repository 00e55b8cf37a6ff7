package main

import (
	"fmt"

	"gorm.io/gorm"

	"invoicer/models"
	"invoicer/pkg/billing"
)

const allocateAttempts = 3

// createInvoiceWithNumber allocates the next invoice number and persists
// the invoice (items included) in one transaction. Two concurrent creations
// can still read the same max; the unique index on invoice_number rejects
// the loser and allocation is retried with a fresh read, so callers never
// see the race.
func createInvoiceWithNumber(inv *models.Invoice) error {
	var lastErr error
	for attempt := 0; attempt < allocateAttempts; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			max, err := maxInvoiceNumber(tx)
			if err != nil {
				return err
			}
			next, err := billing.NextNumber(max)
			if err != nil {
				return err
			}
			inv.InvoiceNumber = next
			return tx.Create(inv).Error
		})
		if err == nil {
			return nil
		}
		if !isUniqueConstraintError(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("could not allocate a unique invoice number: %w", lastErr)
}

// maxInvoiceNumber returns the numerically highest allocated number, or ""
// when no invoice exists. Ordering by length before value keeps INV-10000
// above INV-9999 once the suffix outgrows its padding.
func maxInvoiceNumber(tx *gorm.DB) (string, error) {
	var number string
	err := tx.Model(&models.Invoice{}).
		Select("invoice_number").
		Order("length(invoice_number) DESC, invoice_number DESC").
		Limit(1).
		Scan(&number).Error
	if err != nil {
		return "", err
	}
	return number, nil
}
