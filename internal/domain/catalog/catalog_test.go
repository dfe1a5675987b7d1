package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMenu(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	items := c.Items()
	require.NotEmpty(t, items)

	item, ok := c.Find("Pepperoni Pizza")
	require.True(t, ok)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(9500)))
	assert.Equal(t, "Pizza", item.Category)
	assert.Contains(t, item.DietaryTags, "spicy")

	categories := c.Categories()
	assert.Equal(t, FeaturedCategory, categories[0])
	assert.Contains(t, categories, "Drinks")
}

func TestLoadRejectsBadPrice(t *testing.T) {
	_, err := Load(strings.NewReader("items:\n  - name: Soup\n    price: cheap\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMissingName(t *testing.T) {
	_, err := Load(strings.NewReader("items:\n  - price: 100\n"))
	assert.Error(t, err)
}

func TestPrepMinutesDefaults(t *testing.T) {
	c := New([]MenuItem{{Name: "Soup", PrepMinutes: 0}, {Name: "Steak", PrepMinutes: 25}})

	assert.Equal(t, DefaultPrepMinutes, c.PrepMinutes("Soup"))
	assert.Equal(t, 25, c.PrepMinutes("Steak"))
	assert.Equal(t, DefaultPrepMinutes, c.PrepMinutes("Unknown"))
}

func TestItemsIsACopy(t *testing.T) {
	c := New([]MenuItem{{Name: "Soup"}})
	items := c.Items()
	items[0].Name = "Changed"

	_, ok := c.Find("Soup")
	assert.True(t, ok)
	assert.Equal(t, "Soup", c.Items()[0].Name)
}
