// internal/domain/catalog/insights.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	mainCourseKeywords = []string{"burger", "chicken", "pizza", "pasta"}
	drinkKeywords      = []string{"drink", "cola", "juice", "water"}
	dessertKeywords    = []string{"dessert", "cake", "ice cream"}
)

// EstimatePrep estimates the wait for a cart holding the given line names.
// The slowest item sets the base and every two lines add two minutes.
func (c *Catalog) EstimatePrep(lineNames []string) PrepEstimate {
	if len(lineNames) == 0 {
		return PrepEstimate{}
	}

	longest := 0
	for _, name := range lineNames {
		if m := c.PrepMinutes(name); m > longest {
			longest = m
		}
	}

	buffer := (len(lineNames) + 1) / 2 * 2
	total := longest + buffer

	return PrepEstimate{
		Minutes: total,
		Display: FormatMinutes(total),
	}
}

// FormatMinutes renders minutes as "1h 5m" or "25m"
func FormatMinutes(minutes int) string {
	hours, mins := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// ComboSuggestions proposes meal upgrades when the cart has a main course
// but is missing a drink or a dessert
func ComboSuggestions(lineNames []string) []ComboSuggestion {
	hasMain := containsAny(lineNames, mainCourseKeywords)
	hasDrink := containsAny(lineNames, drinkKeywords)
	hasDessert := containsAny(lineNames, dessertKeywords)

	suggestions := []ComboSuggestion{}
	if !hasMain {
		return suggestions
	}
	if !hasDrink {
		suggestions = append(suggestions, ComboSuggestion{Name: "Add a Drink", Savings: decimal.NewFromInt(1500)})
	}
	if !hasDessert {
		suggestions = append(suggestions, ComboSuggestion{Name: "Add a Dessert", Savings: decimal.NewFromInt(2000)})
	}
	if !hasDrink && !hasDessert {
		suggestions = append(suggestions, ComboSuggestion{Name: "Ultimate Combo Deal", Savings: decimal.NewFromInt(5000)})
	}
	return suggestions
}

func containsAny(names, keywords []string) bool {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
