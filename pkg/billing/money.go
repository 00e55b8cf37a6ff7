// Package billing holds the financial core: exact-decimal money math,
// invoice total derivation, the invoice number sequence and the status
// lifecycle. Everything here is pure; persistence lives with the callers.
package billing

import (
	"github.com/shopspring/decimal"
)

// Monetary amounts carry two fractional digits. Intermediate rate math
// keeps four before the final rounding.
const (
	AmountScale = 2
	RateScale   = 4
)

var hundred = decimal.NewFromInt(100)

// Zero is the canonical 0.00 amount.
func Zero() decimal.Decimal { return decimal.Zero }

// Add returns a+b rounded half-up to the amount scale.
func Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b).Round(AmountScale) }

// Sub returns a-b rounded half-up to the amount scale.
func Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b).Round(AmountScale) }

// LineTotal returns quantity times unit price rounded to the amount scale.
func LineTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity)).Round(AmountScale)
}

// PercentageOf applies a percentage rate to an amount. The rate is divided
// by 100 at four-digit precision and the product rounded to two, so
// PercentageOf(25.00, 10) = 2.50.
func PercentageOf(amount, ratePercent decimal.Decimal) decimal.Decimal {
	factor := ratePercent.DivRound(hundred, RateScale)
	return amount.Mul(factor).Round(AmountScale)
}
