// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when no active product has the requested name
var ErrProductNotFound = errors.New("product not found")

// Service reads the product catalog
type Service struct {
	db *gorm.DB
}

// NewService creates a new catalog service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns active products, optionally restricted to one category
func (s *Service) List(ctx context.Context, category string) ([]Product, error) {
	var products []Product
	if err := s.listQuery(ctx, category).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByName returns the active product with the given name
func (s *Service) GetByName(ctx context.Context, name string) (*Product, error) {
	var prod Product
	if err := s.byNameQuery(ctx, name).First(&prod).Error; err != nil {
		return nil, lookupError(err)
	}
	return &prod, nil
}

func (s *Service) listQuery(ctx context.Context, category string) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&Product{}).Where("is_active = ?", true)
	if c, ok := ParseCategory(category); ok {
		query = query.Where("category = ?", c)
	}
	return query.Order("category ASC, sort_order ASC, name ASC")
}

func (s *Service) byNameQuery(ctx context.Context, name string) *gorm.DB {
	return s.db.WithContext(ctx).Model(&Product{}).Where("name = ? AND is_active = ?", name, true)
}

func lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return fmt.Errorf("failed to get product: %w", err)
}
