// internal/domain/catalog/filter.go
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMaxPrice is the price slider ceiling
var DefaultMaxPrice = decimal.NewFromInt(30000)

// Filter is the current menu browsing state. All criteria must match for an item to be visible.
type Filter struct {
	Category string          `json:"category"`
	Search   string          `json:"search"`
	MaxPrice decimal.Decimal `json:"max_price"`
	Dietary  []string        `json:"dietary"`
}

// NewFilter returns the filter shown on first load: every category, no search, no dietary tags
func NewFilter(maxPrice decimal.Decimal) Filter {
	return Filter{
		Category: FeaturedCategory,
		MaxPrice: maxPrice,
	}
}

// Reset clears dietary tags and restores the price ceiling. Category and search are kept.
func (f *Filter) Reset(maxPrice decimal.Decimal) {
	f.Dietary = nil
	f.MaxPrice = maxPrice
}

// Matches reports whether item passes every criterion
func (f Filter) Matches(item MenuItem) bool {
	category := f.Category
	if category == "" {
		category = FeaturedCategory
	}
	if category != FeaturedCategory && !strings.EqualFold(category, item.Category) {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			return false
		}
	}

	if item.Price.GreaterThan(f.MaxPrice) {
		return false
	}

	if len(f.Dietary) > 0 && !item.HasAnyTag(f.Dietary) {
		return false
	}

	return true
}

// Apply returns the visible items, preserving menu order
func (f Filter) Apply(items []MenuItem) []MenuItem {
	visible := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			visible = append(visible, item)
		}
	}
	return visible
}
