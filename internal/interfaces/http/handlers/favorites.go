// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/favorites"
)

// FavoritesHandler handles favorite dishes
type FavoritesHandler struct {
	favorites *favorites.Service
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(service *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{favorites: service}
}

// GetFavorites handles GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	names := h.favorites.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message": "Favorites retrieved successfully",
		"data": gin.H{
			"items": names,
			"count": len(names),
		},
	})
}

// ToggleFavorite handles POST /favorites/:name/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	name := c.Param("name")
	favorite, err := h.favorites.Toggle(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Removed from favorites"
	if favorite {
		message = "Added to favorites"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"name":     name,
			"favorite": favorite,
		},
	})
}
