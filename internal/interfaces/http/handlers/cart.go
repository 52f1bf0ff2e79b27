// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/domain/cart"
	"github.com/your-org/storefront-cart/internal/domain/catalog"
)

// ProductCatalog looks up the products offered by the store
type ProductCatalog interface {
	List(ctx context.Context, category string) ([]catalog.Product, error)
	GetByName(ctx context.Context, name string) (*catalog.Product, error)
}

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *Sessions
	catalog  ProductCatalog
	logger   logrus.FieldLogger
}

// NewCartHandler creates a new cart handler. catalog may be nil, in which case
// only fully described products can be added.
func NewCartHandler(sessions *Sessions, catalog ProductCatalog, logger logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// AddItemRequest describes a product to add. Either Product names a catalog
// product or Name and Price describe one directly.
type AddItemRequest struct {
	Product string    `json:"product"`
	Name    string    `json:"name"`
	Price   looseText `json:"price"`
	Image   string    `json:"image"`
}

// UpdateItemRequest carries the raw quantity typed by the customer
type UpdateItemRequest struct {
	Quantity looseText `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	session := h.sessions.Open(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    NewCartResponse(session.View()),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	session := h.sessions.Open(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": session.Store().ItemCount(),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	name, price, image := req.Name, string(req.Price), req.Image
	if req.Product != "" {
		if h.catalog == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Product catalog is not available",
			})
			return
		}

		prod, err := h.catalog.GetByName(c.Request.Context(), req.Product)
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		if err != nil {
			h.logger.WithError(err).WithField("product", req.Product).Error("Failed to look up product")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to look up product",
			})
			return
		}
		name, price, image = prod.Name, prod.Price, prod.Image
	}

	session := h.sessions.Open(c)
	if err := session.Add(c.Request.Context(), name, price, image); err != nil {
		if errors.Is(err, cart.ErrInvalidPrice) || errors.Is(err, cart.ErrInvalidName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    NewCartResponse(session.View()),
	})
}

// UpdateCartItem handles PUT /cart/items/:name. A quantity that is not a
// positive whole number removes the item.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	name := c.Param("name")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session := h.sessions.Open(c)
	if _, ok := session.Store().Get(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
		return
	}

	session.SetQuantityInput(c.Request.Context(), name, string(req.Quantity))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    NewCartResponse(session.View()),
	})
}

// RemoveFromCart handles DELETE /cart/items/:name
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	name := c.Param("name")

	session := h.sessions.Open(c)
	if _, ok := session.Store().Get(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
		return
	}

	session.Remove(c.Request.Context(), name)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    NewCartResponse(session.View()),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	session := h.sessions.Open(c)
	session.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    NewCartResponse(session.View()),
	})
}
