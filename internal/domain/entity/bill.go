package entity

import (
	"encoding/json"
	"time"

	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is the immutable persisted record of a completed sale. It is written
// once at checkout and never updated.
type Bill struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber     string             `gorm:"size:100;unique;not null" json:"bill_number"`
	CustomerName   string             `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone  string             `gorm:"size:50" json:"customer_phone,omitempty"`
	OrderType      enum.OrderType     `gorm:"size:20;default:'takeaway'" json:"order_type"`
	SubTotal       int64              `gorm:"not null" json:"-"`  // Stored in cents, excluded from JSON
	Discount       int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax            int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total          int64              `gorm:"not null" json:"-"`  // Stored in cents, excluded from JSON
	PaymentMethod  enum.PaymentMethod `gorm:"size:20;default:'cash'" json:"payment_method"`
	AmountPaid     int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ChangeReturned int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedBy      *uuid.UUID         `gorm:"type:uuid;index" json:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"subtotal"`
		Discount       float64 `json:"discount"`
		Tax            float64 `json:"tax"`
		Total          float64 `json:"total"`
		AmountPaid     float64 `json:"amount_paid"`
		ChangeReturned float64 `json:"change_returned"`
	}{
		Alias:          Alias(b),
		SubTotal:       float64(b.SubTotal) / 100,
		Discount:       float64(b.Discount) / 100,
		Tax:            float64(b.Tax) / 100,
		Total:          float64(b.Total) / 100,
		AmountPaid:     float64(b.AmountPaid) / 100,
		ChangeReturned: float64(b.ChangeReturned) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// DisplayNumber returns the short running number shown on receipts: the final
// dash-delimited segment of the full bill number.
func (b *Bill) DisplayNumber() string {
	for i := len(b.BillNumber) - 1; i >= 0; i-- {
		if b.BillNumber[i] == '-' {
			return b.BillNumber[i+1:]
		}
	}
	return b.BillNumber
}

// BillItem is one line of a persisted bill, captured from the cart at
// checkout time.
type BillItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID     uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	ItemName   string    `gorm:"size:255;not null" json:"item_name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	TotalPrice int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(bi),
		UnitPrice:  float64(bi.UnitPrice) / 100,
		TotalPrice: float64(bi.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillCounter is the single-row atomic sequence behind bill numbers. Numbers
// allocated from it are unique across terminals and never reused, even when a
// checkout aborts after allocation.
type BillCounter struct {
	ID         int    `gorm:"primary_key" json:"id"`
	Prefix     string `gorm:"size:20;not null;default:'AKF'" json:"prefix"`
	LastNumber int64  `gorm:"not null;default:0" json:"last_number"`
}

// TableName returns the table name for the BillCounter model
func (BillCounter) TableName() string {
	return "bill_counters"
}
