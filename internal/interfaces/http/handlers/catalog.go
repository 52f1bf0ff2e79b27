// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/domain/catalog"
)

// CatalogHandler handles product listing endpoints
type CatalogHandler struct {
	catalog ProductCatalog
	logger  logrus.FieldLogger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog ProductCatalog, logger logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

type categoryResponse struct {
	Slug  catalog.Category `json:"slug"`
	Label string           `json:"label"`
}

// GetProducts handles GET /products?category=
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetCategories handles GET /products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories := make([]categoryResponse, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		categories = append(categories, categoryResponse{Slug: cat, Label: cat.Label()})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}
