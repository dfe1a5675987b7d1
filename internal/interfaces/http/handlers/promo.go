// internal/interfaces/http/handlers/promo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/promo"
)

// ApplyPromoRequest carries the code typed by the customer
type ApplyPromoRequest struct {
	Code string `json:"code"`
}

// PromoHandler handles promo code endpoints
type PromoHandler struct {
	selection *promo.Selection
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(selection *promo.Selection) *PromoHandler {
	return &PromoHandler{selection: selection}
}

// ApplyPromo handles POST /promo. An invalid code keeps the active promo.
func (h *PromoHandler) ApplyPromo(c *gin.Context) {
	var req ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result := h.selection.Apply(req.Code)
	if !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": result.Message,
			"code":  "invalid_promo",
			"data":  result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"data":    result,
	})
}

// RemovePromo handles DELETE /promo
func (h *PromoHandler) RemovePromo(c *gin.Context) {
	h.selection.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message": "Promo removed",
	})
}
