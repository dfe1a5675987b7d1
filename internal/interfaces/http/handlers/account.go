// internal/interfaces/http/handlers/account.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/account"
	"github.com/your-org/foodhub-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

var errAccountNotFound = apperror.NotFound("account_not_found", "account not found")

// AccountHandler serves the account dashboard
type AccountHandler struct {
	directory *account.Directory
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(directory *account.Directory) *AccountHandler {
	return &AccountHandler{directory: directory}
}

// GetAccount handles GET /account for the token's owner
func (h *AccountHandler) GetAccount(c *gin.Context) {
	email, ok := middleware.GetEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	acct, found := h.directory.FindByEmail(c.Request.Context(), email)
	if !found {
		respondError(c, errAccountNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account retrieved successfully",
		"data":    acct.Profile(),
	})
}
