// internal/domain/promo/entity.go
package promo

import "github.com/shopspring/decimal"

// Code is a percentage promo code
type Code struct {
	Code        string          `json:"code"`
	Percent     decimal.Decimal `json:"percent"`
	Description string          `json:"description"`
}

// Result is the outcome of applying a code to a subtotal
type Result struct {
	Valid          bool            `json:"valid"`
	Code           string          `json:"code"`
	Percent        decimal.Decimal `json:"percent"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Description    string          `json:"description,omitempty"`
	Message        string          `json:"message"`
}

// DefaultCodes is the built-in promo table
func DefaultCodes() []Code {
	return []Code{
		{Code: "SAVE20", Percent: decimal.NewFromInt(20), Description: "20% off"},
		{Code: "WELCOME10", Percent: decimal.NewFromInt(10), Description: "10% off"},
		{Code: "FOODIE15", Percent: decimal.NewFromInt(15), Description: "15% off"},
		{Code: "FIRSTORDER50", Percent: decimal.NewFromInt(50), Description: "50% off"},
	}
}
