// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/account"
	"github.com/your-org/foodhub-storefront/internal/domain/checkout"
	"github.com/your-org/foodhub-storefront/internal/domain/loyalty"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
	"github.com/your-org/foodhub-storefront/internal/pkg/receipt"
)

var errOrderNotFound = apperror.NotFound("order_not_found", "order not found")

// OrderHandler serves the order history and receipts
type OrderHandler struct {
	history    *order.History
	directory  *account.Directory
	renderer   *receipt.Renderer
	pointsUnit int64
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(history *order.History, directory *account.Directory, renderer *receipt.Renderer, pointsUnit int64) *OrderHandler {
	return &OrderHandler{
		history:    history,
		directory:  directory,
		renderer:   renderer,
		pointsUnit: pointsUnit,
	}
}

// GetOrders handles GET /orders, newest first
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders := h.history.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// GetReceipt handles GET /orders/:id/receipt?format=html|pdf
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	ctx := c.Request.Context()
	o, ok := h.history.Find(ctx, c.Param("id"))
	if !ok {
		respondError(c, errOrderNotFound)
		return
	}

	rec := checkout.Receipt{
		Order:        o,
		Customer:     o.Customer,
		PointsEarned: loyalty.PointsFor(o.Subtotal, h.pointsUnit),
	}
	if o.Customer != "" {
		if acct, found := h.directory.FindByEmail(ctx, o.Customer); found {
			rec.TotalPoints = acct.Points
		}
	} else {
		rec.PointsEarned = 0
	}

	switch strings.ToLower(c.DefaultQuery("format", "html")) {
	case "pdf":
		content, err := h.renderer.PDF(rec)
		if errors.Is(err, receipt.ErrPDFDisabled) {
			c.JSON(http.StatusNotImplemented, gin.H{
				"error": "PDF receipts are not enabled",
			})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", o.ID))
		c.Data(http.StatusOK, "application/pdf", content)
	case "html":
		content, err := h.renderer.HTML(rec)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "format must be html or pdf",
		})
	}
}
