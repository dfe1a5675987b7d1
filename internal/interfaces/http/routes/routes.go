// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/foodhub-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/foodhub-storefront/internal/pkg/auth"
)

// Handlers groups every API handler
type Handlers struct {
	Menu      *handlers.MenuHandler
	Cart      *handlers.CartHandler
	Promo     *handlers.PromoHandler
	Auth      *handlers.AuthHandler
	Account   *handlers.AccountHandler
	Favorites *handlers.FavoritesHandler
	Checkout  *handlers.CheckoutHandler
	Order     *handlers.OrderHandler
}

// SetupRoutes registers all routes under rg
func SetupRoutes(rg *gin.RouterGroup, h *Handlers, jwtManager *auth.JWTManager) {
	SetupMenuRoutes(rg, h)
	SetupCartRoutes(rg, h)
	SetupAuthRoutes(rg, h, jwtManager)
	SetupFavoritesRoutes(rg, h)
	SetupCheckoutRoutes(rg, h)
	SetupOrderRoutes(rg, h)
}

// SetupMenuRoutes sets up catalog browsing routes
func SetupMenuRoutes(rg *gin.RouterGroup, h *Handlers) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.Menu.GetMenu)
		menu.GET("/categories", h.Menu.GetCategories)
	}
}

// SetupCartRoutes sets up cart and promo routes
func SetupCartRoutes(rg *gin.RouterGroup, h *Handlers) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("/items", h.Cart.AddToCart)
		cart.POST("/items/:name/increment", h.Cart.IncrementItem)
		cart.POST("/items/:name/decrement", h.Cart.DecrementItem)
	}

	promo := rg.Group("/promo")
	{
		promo.POST("", h.Promo.ApplyPromo)
		promo.DELETE("", h.Promo.RemovePromo)
	}
}

// SetupAuthRoutes sets up signup, login and account routes
func SetupAuthRoutes(rg *gin.RouterGroup, h *Handlers, jwtManager *auth.JWTManager) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/verify", h.Auth.Verify)
		authGroup.POST("/cancel", h.Auth.Cancel)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	account := rg.Group("/account")
	account.Use(middleware.AuthMiddleware(jwtManager))
	{
		account.GET("", h.Account.GetAccount)
	}
}

// SetupFavoritesRoutes sets up favorite dish routes
func SetupFavoritesRoutes(rg *gin.RouterGroup, h *Handlers) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.Favorites.GetFavorites)
		favorites.POST("/:name/toggle", h.Favorites.ToggleFavorite)
	}
}

// SetupCheckoutRoutes sets up the checkout flow routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, h *Handlers) {
	checkout := rg.Group("/checkout")
	{
		checkout.GET("", h.Checkout.GetCheckout)
		checkout.POST("", h.Checkout.BeginCheckout)
		checkout.POST("/payment", h.Checkout.Pay)
		checkout.POST("/cancel", h.Checkout.CancelCheckout)
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, h *Handlers) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.Order.GetOrders)
		orders.GET("/:id/receipt", h.Order.GetReceipt)
	}
}
