// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/checkout"
)

// CheckoutHandler drives the checkout flow
type CheckoutHandler struct {
	flow *checkout.Flow
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(flow *checkout.Flow) *CheckoutHandler {
	return &CheckoutHandler{flow: flow}
}

// GetCheckout handles GET /checkout. Outside a payment it also returns a
// live quote for the cart so the summary can be shown before starting.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	status := h.flow.Status()
	if status.Quote == nil && status.Receipt == nil {
		quote := h.flow.Quote()
		status.Quote = &quote
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout status retrieved successfully",
		"data":    status,
	})
}

// BeginCheckout handles POST /checkout
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	quote, err := h.flow.Begin(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Choose a payment method",
		"data": gin.H{
			"state": h.flow.State(),
			"quote": quote,
		},
	})
}

// Pay handles POST /checkout/payment. It blocks while the payment is processed.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var req checkout.PaymentDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receipt, err := h.flow.Pay(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    receipt,
	})
}

// CancelCheckout handles POST /checkout/cancel
func (h *CheckoutHandler) CancelCheckout(c *gin.Context) {
	if err := h.flow.Cancel(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout cancelled",
		"data": gin.H{
			"state": h.flow.State(),
		},
	})
}
