package entity

import "time"

// Setting is one key/value pair of store-level configuration (restaurant
// name, receipt header, tax configuration, ...)
type Setting struct {
	SettingKey   string    `gorm:"size:100;primary_key" json:"setting_key"`
	SettingValue string    `gorm:"type:text;not null" json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys
const (
	SettingRestaurantName = "restaurant_name"
	SettingAddress        = "address"
	SettingPhone1         = "phone1"
	SettingPhone2         = "phone2"
	SettingReceiptFooter  = "receipt_footer"
	SettingTaxEnabled     = "tax_enabled"
	SettingTaxPercentage  = "tax_percentage"
)
