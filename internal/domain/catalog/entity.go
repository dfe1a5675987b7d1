// internal/domain/catalog/entity.go
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FeaturedCategory selects every category
const FeaturedCategory = "Featured"

// DefaultPrepMinutes is used for items without a known prep time
const DefaultPrepMinutes = 10

// MenuItem is one dish on the menu
type MenuItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	DietaryTags []string        `json:"dietary_tags"`
	PrepMinutes int             `json:"prep_minutes"`
	Featured    bool            `json:"featured"`
}

// HasAnyTag reports whether the item carries at least one of tags, ignoring case
func (m MenuItem) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range m.DietaryTags {
			if strings.EqualFold(strings.TrimSpace(want), have) {
				return true
			}
		}
	}
	return false
}

// ComboSuggestion is an upsell offer shown next to the cart
type ComboSuggestion struct {
	Name    string          `json:"name"`
	Savings decimal.Decimal `json:"savings"`
}

// PrepEstimate is the expected wait for the current cart
type PrepEstimate struct {
	Minutes int    `json:"minutes"`
	Display string `json:"display"`
}
