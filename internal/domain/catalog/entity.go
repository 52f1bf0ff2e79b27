// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products on the products page
type Category string

const (
	CategoryPersonalCare   Category = "personal-care"
	CategoryPantrySupplies Category = "pantry-supplies"
	CategoryHouseCleaning  Category = "house-cleaning-supplies"
)

// Categories lists the known categories in display order
var Categories = []Category{CategoryPersonalCare, CategoryPantrySupplies, CategoryHouseCleaning}

// ParseCategory accepts either the slug or the display label. Anything else
// (including "Filter Products") means all categories.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if raw == string(c) || raw == c.Label() {
			return c, true
		}
	}
	return "", false
}

// Label is the human readable category name
func (c Category) Label() string {
	switch c {
	case CategoryPersonalCare:
		return "Personal Care"
	case CategoryPantrySupplies:
		return "Pantry Supplies"
	case CategoryHouseCleaning:
		return "House-Cleaning Supplies"
	default:
		return string(c)
	}
}

// Product is a catalog item that can be added to a cart
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Price     string         `gorm:"not null;size:32" json:"price"` // Advertised price, e.g. "25.50"
	Image     string         `gorm:"size:500" json:"image"`
	Category  Category       `gorm:"not null;size:64;index" json:"category"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
