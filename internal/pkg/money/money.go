// internal/pkg/money/money.go
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted documents store amounts as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// Parse reads a loosely formatted price such as "₦5,000" or "5000.50".
// Anything that does not yield a non-negative number parses as zero.
func Parse(raw string) decimal.Decimal {
	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Format renders amount with the currency symbol and thousands separators,
// dropping the fraction for whole amounts: ₦10,000 or ₦12.50
func Format(symbol string, amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return group(symbol, amount.StringFixed(0))
	}
	return group(symbol, amount.StringFixed(2))
}

// FormatFixed always shows two decimal places: ₦10,000.00
func FormatFixed(symbol string, amount decimal.Decimal) string {
	return group(symbol, amount.StringFixed(2))
}

func group(symbol, text string) string {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	intPart, frac := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		intPart, frac = text[:i], text[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + symbol + b.String() + frac
}
