package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// Invoice numbers look like INV-0001: a fixed prefix and a numeric suffix
// padded to four digits. Past 9999 the suffix simply grows (INV-10000).
const (
	numberPrefix = "INV-"
	numberPad    = 4
)

// FirstNumber is allocated when no invoice exists yet.
const FirstNumber = "INV-0001"

// NextNumber returns the successor of the highest allocated invoice number.
// An empty current max starts the sequence at FirstNumber.
func NextNumber(currentMax string) (string, error) {
	if currentMax == "" {
		return FirstNumber, nil
	}
	suffix := strings.TrimPrefix(currentMax, numberPrefix)
	if suffix == currentMax {
		return "", fmt.Errorf("billing: malformed invoice number %q", currentMax)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return "", fmt.Errorf("billing: malformed invoice number %q", currentMax)
	}
	return FormatNumber(n + 1), nil
}

// FormatNumber renders a sequence value as an invoice number.
func FormatNumber(n int) string {
	return fmt.Sprintf("%s%0*d", numberPrefix, numberPad, n)
}
