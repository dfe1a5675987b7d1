package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePrep(t *testing.T) {
	c := New([]MenuItem{
		{Name: "Pepperoni Pizza", PrepMinutes: 20},
		{Name: "Coca Cola", PrepMinutes: 1},
		{Name: "Slow Roast", PrepMinutes: 75},
	})

	assert.Equal(t, PrepEstimate{}, c.EstimatePrep(nil))

	// one line: 20 + ceil(1/2)*2
	assert.Equal(t, PrepEstimate{Minutes: 22, Display: "22m"}, c.EstimatePrep([]string{"Pepperoni Pizza"}))

	// three lines: 20 + ceil(3/2)*2
	got := c.EstimatePrep([]string{"Pepperoni Pizza", "Coca Cola", "Mystery"})
	assert.Equal(t, 24, got.Minutes)

	// unknown items count as ten minutes
	assert.Equal(t, 12, c.EstimatePrep([]string{"Mystery"}).Minutes)

	got = c.EstimatePrep([]string{"Slow Roast", "Coca Cola"})
	assert.Equal(t, PrepEstimate{Minutes: 77, Display: "1h 17m"}, got)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "59m", FormatMinutes(59))
	assert.Equal(t, "1h 0m", FormatMinutes(60))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}

func suggestionNames(s []ComboSuggestion) []string {
	out := []string{}
	for _, x := range s {
		out = append(out, x.Name)
	}
	return out
}

func TestComboSuggestions(t *testing.T) {
	assert.Empty(t, ComboSuggestions(nil))
	assert.Empty(t, ComboSuggestions([]string{"Coca Cola"}), "no main course, no suggestions")

	assert.Equal(t,
		[]string{"Add a Drink", "Add a Dessert", "Ultimate Combo Deal"},
		suggestionNames(ComboSuggestions([]string{"Double Cheese-Burger"})))

	assert.Equal(t,
		[]string{"Add a Dessert"},
		suggestionNames(ComboSuggestions([]string{"Pepperoni Pizza", "Orange Juice"})))

	assert.Equal(t,
		[]string{"Add a Drink"},
		suggestionNames(ComboSuggestions([]string{"Creamy Chicken Pasta", "Vanilla Ice Cream"})))

	assert.Empty(t, ComboSuggestions([]string{"Grilled Chicken", "Coca Cola", "Chocolate Cake"}))
}

func TestComboSavings(t *testing.T) {
	s := ComboSuggestions([]string{"Gourmet Burger"})
	assert.Equal(t, int64(1500), s[0].Savings.IntPart())
	assert.Equal(t, int64(2000), s[1].Savings.IntPart())
	assert.Equal(t, int64(5000), s[2].Savings.IntPart())
}
