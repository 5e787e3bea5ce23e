package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FmtPrice renders a peso amount with locale-aware thousands separators.
// Example: FmtPrice(12500, "es") => "$ 12.500", FmtPrice(12500, "en") => "$ 12,500".
// Fractional amounts keep two decimals with the locale's decimal mark.
func FmtPrice(amount float64, lang string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}
	group, decimal := ".", ","
	if strings.ToLower(lang) == "en" {
		group, decimal = ",", "."
	}
	whole := int64(amount)
	frac := amount - float64(whole)
	if frac < 1e-9 {
		return "$ " + thousandSep(whole, group)
	}
	cents := int(math.Round(frac * 100))
	if cents >= 100 {
		// rounding carried into the integer part
		return "$ " + thousandSep(whole+1, group)
	}
	return fmt.Sprintf("$ %s%s%02d", thousandSep(whole, group), decimal, cents)
}

func thousandSep(n int64, group string) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FmtDate formats a time in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "en":
		return t.Format("Jan 2, 2006")
	default:
		return t.Format("02/01/2006")
	}
}
