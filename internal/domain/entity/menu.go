package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem represents one sellable item on the menu
type MenuItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ItemName    string         `gorm:"size:255;not null" json:"item_name"`
	Category    string         `gorm:"size:255;not null;index" json:"category"`
	Price       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string        `gorm:"size:255" json:"image_url,omitempty"`
	IsAvailable bool           `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// PriceDecimal returns the price as a decimal
func (m *MenuItem) PriceDecimal() float64 {
	return float64(m.Price) / 100
}

// Category represents a menu category used to group items on the billing grid
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryName string    `gorm:"size:255;unique;not null" json:"category_name"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
