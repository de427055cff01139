package entity

import (
	"encoding/json"
	"time"

	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense represents a recorded business expense
type Expense struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Date          time.Time          `gorm:"type:date;not null;index" json:"date"`
	Category      string             `gorm:"size:255;not null;index" json:"category"`
	Description   string             `gorm:"type:text;not null" json:"description"`
	Amount        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaidTo        *string            `gorm:"size:255" json:"paid_to,omitempty"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;default:'cash'" json:"payment_method"`
	ReceiptImage  *string            `gorm:"size:255" json:"receipt_image,omitempty"`
	CreatedBy     *uuid.UUID         `gorm:"type:uuid;index" json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
		Date   string  `json:"date"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
		Date:   e.Date.Format("2006-01-02"),
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseCategory represents a category expenses are filed under
type ExpenseCategory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryName string    `gorm:"size:255;unique;not null" json:"category_name"`
	CategoryType string    `gorm:"size:50;not null" json:"category_type"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new expense category
func (c *ExpenseCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseCategory model
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}
