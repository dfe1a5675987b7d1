// internal/domain/catalog/catalog.go
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

type menuDocument struct {
	Items []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Price       string   `yaml:"price"`
		Category    string   `yaml:"category"`
		Dietary     []string `yaml:"dietary"`
		PrepMinutes int      `yaml:"prep_minutes"`
		Featured    bool     `yaml:"featured"`
	} `yaml:"items"`
}

// Catalog is the read-only menu
type Catalog struct {
	items  []MenuItem
	byName map[string]int
}

// Default loads the menu bundled with the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultMenu))
}

// Load parses a YAML menu document
func Load(r io.Reader) (*Catalog, error) {
	var doc menuDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}

	items := make([]MenuItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("menu item without a name")
		}
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for %s: %w", it.Price, it.Name, err)
		}
		tags := make([]string, 0, len(it.Dietary))
		for _, tag := range it.Dietary {
			tags = append(tags, strings.ToLower(tag))
		}
		items = append(items, MenuItem{
			Name:        it.Name,
			Description: it.Description,
			Price:       price,
			Category:    it.Category,
			DietaryTags: tags,
			PrepMinutes: it.PrepMinutes,
			Featured:    it.Featured,
		})
	}

	return New(items), nil
}

// New builds a catalog from items. Later duplicates of a name are ignored by Find.
func New(items []MenuItem) *Catalog {
	c := &Catalog{
		items:  items,
		byName: make(map[string]int, len(items)),
	}
	for i, item := range items {
		if _, ok := c.byName[item.Name]; !ok {
			c.byName[item.Name] = i
		}
	}
	return c
}

// Items returns a copy of the menu in display order
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find looks an item up by its exact display name
func (c *Catalog) Find(name string) (MenuItem, bool) {
	i, ok := c.byName[name]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[i], true
}

// Categories lists the navigation categories, Featured first
func (c *Catalog) Categories() []string {
	seen := map[string]bool{FeaturedCategory: true}
	out := []string{FeaturedCategory}
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// PrepMinutes returns the item's prep time, or DefaultPrepMinutes if unknown
func (c *Catalog) PrepMinutes(name string) int {
	item, ok := c.Find(name)
	if !ok || item.PrepMinutes <= 0 {
		return DefaultPrepMinutes
	}
	return item.PrepMinutes
}
