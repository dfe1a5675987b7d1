// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/domain/catalog"
)

// MenuHandler serves the catalog
type MenuHandler struct {
	catalog  *catalog.Catalog
	maxPrice decimal.Decimal
	currency string
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(c *catalog.Catalog, maxPrice decimal.Decimal, currency string) *MenuHandler {
	return &MenuHandler{
		catalog:  c,
		maxPrice: maxPrice,
		currency: currency,
	}
}

// GetMenu handles GET /menu?category=&search=&max_price=&dietary=
func (h *MenuHandler) GetMenu(c *gin.Context) {
	filter := catalog.NewFilter(h.maxPrice)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filter.Category = category
	}
	filter.Search = c.Query("search")

	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil || maxPrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid max_price",
			})
			return
		}
		filter.MaxPrice = maxPrice
	}

	for _, value := range c.QueryArray("dietary") {
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Dietary = append(filter.Dietary, tag)
			}
		}
	}

	items := filter.Apply(h.catalog.Items())

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data": gin.H{
			"items":    items,
			"count":    len(items),
			"filter":   filter,
			"currency": h.currency,
		},
	})
}

// GetCategories handles GET /menu/categories
func (h *MenuHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}
