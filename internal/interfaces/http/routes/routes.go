// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-cart/internal/interfaces/http/handlers"
)

// Handlers groups the handlers mounted under the API prefix. Catalog is nil
// when no product database is configured.
type Handlers struct {
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Catalog  *handlers.CatalogHandler
}

// SetupCatalogRoutes sets up product listing routes
func SetupCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	products := rg.Group("/products")
	{
		products.GET("", h.GetProducts)
		products.GET("/categories", h.GetCategories)
	}
}

// SetupCartRoutes sets up cart routes. Carts belong to the browsing session cookie.
func SetupCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.GET("/count", h.GetCartCount)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items/:name", h.UpdateCartItem)
		cart.DELETE("/items/:name", h.RemoveFromCart)
		cart.DELETE("", h.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group("/checkout")
	{
		checkout.GET("/summary", h.GetSummary)
		checkout.PUT("/method", h.SelectMethod)
		checkout.POST("/orders", h.PlaceOrder)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, h Handlers) {
	if h.Catalog != nil {
		SetupCatalogRoutes(rg, h.Catalog)
	}
	SetupCartRoutes(rg, h.Cart)
	SetupCheckoutRoutes(rg, h.Checkout)
}
