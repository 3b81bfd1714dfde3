package invoice

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a free-text money value into a number. Model output
// is only best-effort, so currency symbols, ISO codes, and thousands
// separators are stripped before conversion. A value that still does not
// parse is absent (nil) rather than an error.
func ParseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") || strings.EqualFold(s, "null") {
		return nil
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == ',', r == '\'', r == '_', unicode.IsSpace(r):
			// thousands separators
		case unicode.IsLetter(r), unicode.IsSymbol(r):
			// currency codes ("USD"), symbols ("$", "€", "₹")
		default:
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}

// FormatAmount renders a number with the fewest digits that survive a
// re-parse, so formatting and parsing round-trip. Nil renders empty.
func FormatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Amount is a convenience for building optional numeric fields in tests
// and callers that already hold a concrete value.
func Amount(v float64) *float64 {
	return &v
}
