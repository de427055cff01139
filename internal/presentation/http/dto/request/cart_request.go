package request

// AddCartItemRequest adds a menu item to the terminal's cart
type AddCartItemRequest struct {
	ItemID string  `json:"item_id" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Price  float64 `json:"price" binding:"min=0"`
}

// UpdateCartQuantityRequest sets the quantity of a cart line
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartNoteRequest sets the kitchen note on a cart line
type UpdateCartNoteRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// UpdateCartExtraChargeRequest sets the per-unit surcharge on a cart line
type UpdateCartExtraChargeRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
}

// UpdateCartOrderRequest updates order-level cart fields. Absent fields are
// left unchanged.
type UpdateCartOrderRequest struct {
	CustomerName   *string  `json:"customer_name,omitempty" binding:"omitempty,max=255"`
	CustomerPhone  *string  `json:"customer_phone,omitempty" binding:"omitempty,max=50"`
	OrderType      *string  `json:"order_type,omitempty" binding:"omitempty,oneof=dine-in takeaway delivery"`
	PaymentMethod  *string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash card mobile"`
	Discount       *float64 `json:"discount,omitempty" binding:"omitempty,min=0"`
	AmountPaid     *float64 `json:"amount_paid,omitempty" binding:"omitempty,min=0"`
	DeliveryCharge *float64 `json:"delivery_charge,omitempty" binding:"omitempty,min=0"`
}
