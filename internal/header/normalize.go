// Package header resolves arbitrary spreadsheet column names against the
// import template schema.
//
// Source files come from many origins (ERP exports, hand-maintained
// spreadsheets) with inconsistent casing, punctuation and separators.
// Normalization is aggressive enough to unify "Supplier-Part#",
// "supplier_part_number" and "Supplier Part Number " into one comparison key,
// and mapping resolves those keys against the template in three tiers.
package header

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a raw column name into a comparison key: a leading
// byte-order-mark artifact is stripped, the name is trimmed and lowercased,
// every rune that is not a letter or digit becomes a space, and whitespace
// runs collapse to a single space. Pure and idempotent; any input yields a
// valid (possibly empty) key.
func Normalize(raw string) string {
	s := strings.TrimPrefix(raw, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
