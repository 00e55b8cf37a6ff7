package billing

import "github.com/shopspring/decimal"

// Line is the billable part of one invoice item.
type Line struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Totals are the derived financial fields of an invoice. TaxAmount is set
// only when a tax rate was supplied; a zero rate yields a zero tax amount,
// an absent rate yields none, and the two stay distinguishable.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.NullDecimal
	Total     decimal.Decimal
}

// Calculate derives subtotal, tax amount and total from the lines in their
// given order. The subtotal accumulates left to right with two-decimal
// rounding at each step. Calculate never fails: out-of-range inputs are the
// caller's validation problem, and the result of an oversized discount is a
// negative total for the caller to reject.
func Calculate(lines []Line, taxRate, discount decimal.NullDecimal) Totals {
	subtotal := Zero()
	for _, l := range lines {
		subtotal = Add(subtotal, LineTotal(l.Quantity, l.UnitPrice))
	}

	t := Totals{Subtotal: subtotal, Total: subtotal}
	if taxRate.Valid {
		t.TaxAmount = decimal.NullDecimal{Decimal: PercentageOf(subtotal, taxRate.Decimal), Valid: true}
		t.Total = Add(t.Total, t.TaxAmount.Decimal)
	}
	if discount.Valid {
		t.Total = Sub(t.Total, discount.Decimal)
	}
	return t
}
