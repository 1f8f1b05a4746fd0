package frame

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencyReplacer = strings.NewReplacer(",", "", "$", "")

// CleanCurrency strips thousands-separator commas and dollar signs from a
// cell and trims the result. Purely textual; other characters pass through.
func CleanCurrency(s string) string {
	return strings.TrimSpace(currencyReplacer.Replace(s))
}

// ToNumeric coerces a cell to a decimal value. The cell is currency-scrubbed
// first, then every rune that is not a digit, period or hyphen is discarded
// ("$1,234.56 AUD" coerces to 1234.56). An empty or degenerate remainder
// (".", "-", "-.", ".-") yields no value rather than an error, as does a
// remainder that fails to parse as a single number (e.g. "12-34"). The
// function is total: it never panics and never returns an error.
func ToNumeric(s string) (decimal.Decimal, bool) {
	cleaned := CleanCurrency(s)

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	switch b.String() {
	case "", ".", "-", "-.", ".-":
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
