// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/domain/catalog"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger logrus.FieldLogger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("Running database auto-migrations")

	models := []interface{}{
		&catalog.Product{},
	}

	for _, model := range models {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for the product listing queries
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_sort_order ON products(category, sort_order)",
	}

	failCount := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.logger.WithError(err).Warn("Failed to create index")
			failCount++
		}
	}

	m.logger.WithFields(logrus.Fields{
		"created": len(indexes) - failCount,
		"failed":  failCount,
	}).Info("Indexes created")
	return nil
}

// SeedInitialData inserts the storefront's products when they are missing
func (m *Migration) SeedInitialData() error {
	m.logger.Info("Seeding catalog products")

	for _, prod := range SeedProducts() {
		var existing catalog.Product
		result := m.db.Where("name = ?", prod.Name).First(&existing)
		if result.Error == nil {
			m.logger.WithField("product", prod.Name).Debug("Product already exists")
			continue
		}

		if err := m.db.Create(&prod).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", prod.Name, err)
		}
		m.logger.WithField("product", prod.Name).Info("Created product")
	}

	return nil
}

// SeedProducts returns the default storefront catalog
func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{Name: "Safeguard Bar Soap", Price: "25.50", Image: "images/product-1.jpg", Category: catalog.CategoryPersonalCare, IsActive: true, SortOrder: 1},
		{Name: "Colgate Toothpaste", Price: "89.00", Image: "images/product-2.jpg", Category: catalog.CategoryPersonalCare, IsActive: true, SortOrder: 2},
		{Name: "Palmolive Shampoo", Price: "149.75", Image: "images/product-3.jpg", Category: catalog.CategoryPersonalCare, IsActive: true, SortOrder: 3},
		{Name: "Jasmine Rice 5kg", Price: "310.00", Image: "images/product-4.jpg", Category: catalog.CategoryPantrySupplies, IsActive: true, SortOrder: 1},
		{Name: "Century Tuna", Price: "42.25", Image: "images/product-5.jpg", Category: catalog.CategoryPantrySupplies, IsActive: true, SortOrder: 2},
		{Name: "Datu Puti Vinegar", Price: "30.00", Image: "images/product-6.jpg", Category: catalog.CategoryPantrySupplies, IsActive: true, SortOrder: 3},
		{Name: "Zonrox Bleach", Price: "55.00", Image: "images/product-7.jpg", Category: catalog.CategoryHouseCleaning, IsActive: true, SortOrder: 1},
		{Name: "Joy Dishwashing Liquid", Price: "67.50", Image: "images/product-8.jpg", Category: catalog.CategoryHouseCleaning, IsActive: true, SortOrder: 2},
		{Name: "Ariel Detergent Powder", Price: "125.00", Image: "images/product-9.jpg", Category: catalog.CategoryHouseCleaning, IsActive: true, SortOrder: 3},
	}
}
