package cart

import (
	"math"

	"github.com/akfoods/pos-api/internal/domain/enum"
)

// CatalogItem is the subset of a menu item needed to add it to a cart.
type CatalogItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Line is a single ordered item within a cart, keyed by menu item ID.
// TotalPrice is stored, not derived at read time: every mutation that touches
// Quantity, UnitPrice or ExtraCharge must refresh it.
type Line struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ExtraCharge float64 `json:"extra_charge,omitempty"`
	Note        string  `json:"note,omitempty"`
	TotalPrice  float64 `json:"total_price"`
}

func (l *Line) recompute() {
	l.TotalPrice = float64(l.Quantity) * (l.UnitPrice + l.ExtraCharge)
}

// Cart is the in-progress order being built at one terminal. It is plain
// single-owner state: callers are responsible for serializing access to it.
type Cart struct {
	items []Line

	customerName   string
	customerPhone  string
	orderType      enum.OrderType
	paymentMethod  enum.PaymentMethod
	discount       float64
	amountPaid     float64
	deliveryCharge float64

	// Tax configuration is store-level, not order-level: Clear leaves it alone.
	taxEnabled    bool
	taxPercentage float64
}

// New creates an empty cart with default order fields.
func New() *Cart {
	return &Cart{
		orderType:     enum.OrderTypeTakeaway,
		paymentMethod: enum.PaymentMethodCash,
	}
}

func (c *Cart) find(id string) *Line {
	for i := range c.items {
		if c.items[i].ID == id {
			return &c.items[i]
		}
	}
	return nil
}

// AddItem appends a new line with quantity 1, or increments the quantity of
// the existing line with the same ID. A repeat add keeps the line's original
// name, unit price and extra charge; the supplied catalog values are ignored.
func (c *Cart) AddItem(item CatalogItem) {
	if line := c.find(item.ID); line != nil {
		line.Quantity++
		line.recompute()
		return
	}
	c.items = append(c.items, Line{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   1,
		UnitPrice:  item.Price,
		TotalPrice: item.Price,
	})
}

// RemoveItem deletes the line with the given ID. Removing an absent ID is a
// no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line. Quantities below 1 are rejected
// as a no-op; callers decrementing from 1 are expected to call RemoveItem.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	if line := c.find(id); line != nil {
		line.Quantity = quantity
		line.recompute()
	}
}

// UpdateNote sets the free-text instruction on a line. Notes do not affect
// pricing.
func (c *Cart) UpdateNote(id, note string) {
	if line := c.find(id); line != nil {
		line.Note = note
	}
}

// UpdateExtraCharge sets the per-unit surcharge on a line and refreshes its
// total. The amount is taken as given; validating it is the caller's concern.
func (c *Cart) UpdateExtraCharge(id string, amount float64) {
	if line := c.find(id); line != nil {
		line.ExtraCharge = amount
		line.recompute()
	}
}

func (c *Cart) SetCustomerName(name string)           { c.customerName = name }
func (c *Cart) SetCustomerPhone(phone string)         { c.customerPhone = phone }
func (c *Cart) SetOrderType(t enum.OrderType)         { c.orderType = t }
func (c *Cart) SetPaymentMethod(m enum.PaymentMethod) { c.paymentMethod = m }
func (c *Cart) SetDiscount(amount float64)            { c.discount = amount }
func (c *Cart) SetAmountPaid(amount float64)          { c.amountPaid = amount }
func (c *Cart) SetDeliveryCharge(amount float64)      { c.deliveryCharge = amount }

// SetTaxConfig replaces the tax configuration. Totals computed after this call
// reflect the new configuration immediately.
func (c *Cart) SetTaxConfig(enabled bool, percentage float64) {
	c.taxEnabled = enabled
	c.taxPercentage = percentage
}

// Subtotal is the sum of all line totals.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for i := range c.items {
		sum += c.items[i].TotalPrice
	}
	return sum
}

// Tax computes tax on the discounted subtotal, rounded to 2 decimal places.
// A discount larger than the subtotal drives the taxable base (and the tax)
// negative; the base is deliberately not clamped, Total's floor at zero is the
// only clamp in the model.
func (c *Cart) Tax() float64 {
	if !c.taxEnabled {
		return 0
	}
	return math.Round((c.Subtotal()-c.discount)*(c.taxPercentage/100)*100) / 100
}

// Total is subtotal + tax - discount + delivery charge, floored at zero.
func (c *Cart) Total() float64 {
	return math.Max(0, c.Subtotal()+c.Tax()-c.discount+c.deliveryCharge)
}

// Clear resets the items and all order-level fields to their defaults. The
// tax configuration survives: it belongs to the store, not to one order.
func (c *Cart) Clear() {
	c.items = nil
	c.customerName = ""
	c.customerPhone = ""
	c.orderType = enum.OrderTypeTakeaway
	c.paymentMethod = enum.PaymentMethodCash
	c.discount = 0
	c.amountPaid = 0
	c.deliveryCharge = 0
}

// Lines returns a copy of the current line items in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) CustomerName() string              { return c.customerName }
func (c *Cart) CustomerPhone() string             { return c.customerPhone }
func (c *Cart) OrderType() enum.OrderType         { return c.orderType }
func (c *Cart) PaymentMethod() enum.PaymentMethod { return c.paymentMethod }
func (c *Cart) Discount() float64                 { return c.discount }
func (c *Cart) AmountPaid() float64               { return c.amountPaid }
func (c *Cart) DeliveryCharge() float64           { return c.deliveryCharge }
func (c *Cart) TaxEnabled() bool                  { return c.taxEnabled }
func (c *Cart) TaxPercentage() float64            { return c.taxPercentage }

// State is a read-only snapshot of a cart, used for API responses and as the
// checkout input.
type State struct {
	Items          []Line             `json:"items"`
	CustomerName   string             `json:"customer_name"`
	CustomerPhone  string             `json:"customer_phone"`
	OrderType      enum.OrderType     `json:"order_type"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	Discount       float64            `json:"discount"`
	AmountPaid     float64            `json:"amount_paid"`
	DeliveryCharge float64            `json:"delivery_charge"`
	TaxEnabled     bool               `json:"tax_enabled"`
	TaxPercentage  float64            `json:"tax_percentage"`
	Subtotal       float64            `json:"subtotal"`
	Tax            float64            `json:"tax"`
	Total          float64            `json:"total"`
}

// Snapshot captures the full cart state, including the derived monetary
// figures, as they stand right now.
func (c *Cart) Snapshot() State {
	return State{
		Items:          c.Lines(),
		CustomerName:   c.customerName,
		CustomerPhone:  c.customerPhone,
		OrderType:      c.orderType,
		PaymentMethod:  c.paymentMethod,
		Discount:       c.discount,
		AmountPaid:     c.amountPaid,
		DeliveryCharge: c.deliveryCharge,
		TaxEnabled:     c.taxEnabled,
		TaxPercentage:  c.taxPercentage,
		Subtotal:       c.Subtotal(),
		Tax:            c.Tax(),
		Total:          c.Total(),
	}
}
