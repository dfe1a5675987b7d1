// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
	"github.com/your-org/foodhub-storefront/internal/domain/catalog"
	"github.com/your-org/foodhub-storefront/internal/domain/promo"
)

// AddToCartRequest adds one unit of a dish. Price is only read for dishes
// that are not on the menu and accepts display text such as "₦2,500".
type AddToCartRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price"`
}

// CartResponse is the cart with its promo and kitchen insights
type CartResponse struct {
	Items     []cart.LineItem           `json:"items"`
	Totals    cart.Totals               `json:"totals"`
	PromoCode string                    `json:"promo_code,omitempty"`
	Discount  decimal.Decimal           `json:"discount"`
	Prep      catalog.PrepEstimate      `json:"prep_estimate"`
	Combos    []catalog.ComboSuggestion `json:"combo_suggestions"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	cart      *cart.Cart
	selection *promo.Selection
	catalog   *catalog.Catalog
}

// NewCartHandler creates a new cart handler
func NewCartHandler(c *cart.Cart, selection *promo.Selection, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{
		cart:      c,
		selection: selection,
		catalog:   cat,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.view(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	price := cart.ParsePrice(req.Price)
	if item, ok := h.catalog.Find(name); ok {
		name, price = item.Name, item.Price
	}

	if err := h.cart.AddItem(name, price); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": name + " added to cart",
		"data":    h.view(),
	})
}

// IncrementItem handles POST /cart/items/:name/increment
func (h *CartHandler) IncrementItem(c *gin.Context) {
	if err := h.cart.Increment(c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.view(),
	})
}

// DecrementItem handles POST /cart/items/:name/decrement. The line is
// removed when its quantity reaches zero.
func (h *CartHandler) DecrementItem(c *gin.Context) {
	if err := h.cart.Decrement(c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.view(),
	})
}

func (h *CartHandler) view() CartResponse {
	snapshot := h.cart.Snapshot()
	resp := CartResponse{
		Items:    snapshot.Items,
		Totals:   snapshot.Totals,
		Discount: h.selection.DiscountFor(snapshot.Totals.SubTotal),
		Prep:     h.catalog.EstimatePrep(snapshot.Names()),
		Combos:   catalog.ComboSuggestions(snapshot.Names()),
	}
	if active, ok := h.selection.Active(); ok {
		resp.PromoCode = active.Code
	}
	return resp
}
