package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleMenu() []MenuItem {
	return []MenuItem{
		{Name: "Pepperoni Pizza", Description: "Spicy pepperoni", Price: decimal.NewFromInt(9500), Category: "Pizza", DietaryTags: []string{"spicy"}},
		{Name: "Margherita Pizza", Description: "Tomato and basil", Price: decimal.NewFromInt(8500), Category: "Pizza", DietaryTags: []string{"vegetarian"}},
		{Name: "Coca Cola", Description: "Chilled bottle", Price: decimal.NewFromInt(800), Category: "Drinks", DietaryTags: []string{"vegan", "vegetarian"}},
		{Name: "Wagyu Platter", Description: "Premium beef", Price: decimal.NewFromInt(45000), Category: "Grill"},
	}
}

func names(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestDefaultFilterShowsEverythingUnderCeiling(t *testing.T) {
	f := NewFilter(DefaultMaxPrice)
	got := f.Apply(sampleMenu())
	assert.Equal(t, []string{"Pepperoni Pizza", "Margherita Pizza", "Coca Cola"}, names(got))
}

func TestFilterCategory(t *testing.T) {
	f := NewFilter(DefaultMaxPrice)
	f.Category = "pizza"
	assert.Equal(t, []string{"Pepperoni Pizza", "Margherita Pizza"}, names(f.Apply(sampleMenu())))

	f.Category = ""
	assert.Len(t, f.Apply(sampleMenu()), 3, "empty category behaves like Featured")
}

func TestFilterSearchMatchesNameOrDescription(t *testing.T) {
	f := NewFilter(DefaultMaxPrice)

	f.Search = "  PIZZA "
	assert.Equal(t, []string{"Pepperoni Pizza", "Margherita Pizza"}, names(f.Apply(sampleMenu())))

	f.Search = "basil"
	assert.Equal(t, []string{"Margherita Pizza"}, names(f.Apply(sampleMenu())))

	f.Search = "sushi"
	assert.Empty(t, f.Apply(sampleMenu()))
}

func TestFilterMaxPriceIsInclusive(t *testing.T) {
	f := NewFilter(decimal.NewFromInt(8500))
	assert.Equal(t, []string{"Margherita Pizza", "Coca Cola"}, names(f.Apply(sampleMenu())))
}

func TestFilterDietaryIsAnyOf(t *testing.T) {
	f := NewFilter(DefaultMaxPrice)
	f.Dietary = []string{"Vegan", "spicy"}
	assert.Equal(t, []string{"Pepperoni Pizza", "Coca Cola"}, names(f.Apply(sampleMenu())))
}

func TestFilterCombinesCriteria(t *testing.T) {
	f := NewFilter(DefaultMaxPrice)
	f.Category = "Pizza"
	f.Dietary = []string{"vegetarian"}
	f.Search = "pizza"
	assert.Equal(t, []string{"Margherita Pizza"}, names(f.Apply(sampleMenu())))
}

func TestFilterReset(t *testing.T) {
	f := NewFilter(DefaultMaxPrice)
	f.Category = "Drinks"
	f.Dietary = []string{"vegan"}
	f.MaxPrice = decimal.NewFromInt(100)

	f.Reset(DefaultMaxPrice)

	assert.Empty(t, f.Dietary)
	assert.True(t, f.MaxPrice.Equal(DefaultMaxPrice))
	assert.Equal(t, "Drinks", f.Category)
}
