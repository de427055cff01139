package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address,omitempty"`
	Phone1         string `json:"phone1,omitempty"`
	Phone2         string `json:"phone2,omitempty"`
}

// ReceiptItem represents a single line item on a receipt or kitchen ticket.
type ReceiptItem struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ExtraCharge float64 `json:"extra_charge,omitempty"`
	Note        string  `json:"note,omitempty"`
	Total       float64 `json:"total"`
}

// Receipt is a value object representing a printable customer receipt or
// kitchen order ticket. It is not a database entity: it is composed from the
// bill snapshot (or a persisted bill, for reprints) at print time.
type Receipt struct {
	Header     ReceiptHeader `json:"header"`
	BillNumber string        `json:"bill_number"` // short display number (last segment)
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	OrderType  string        `json:"order_type"`
	Customer   string        `json:"customer,omitempty"`
	Phone      string        `json:"phone,omitempty"`
	Items      []ReceiptItem `json:"items"`
	SubTotal   float64       `json:"sub_total"`
	Discount   float64       `json:"discount"`
	Tax        float64       `json:"tax"`
	TaxPercent float64       `json:"tax_percent,omitempty"`
	Delivery   float64       `json:"delivery,omitempty"`
	Total      float64       `json:"total"`
	Paid       float64       `json:"paid"`
	Change     float64       `json:"change"`
	Payment    string        `json:"payment,omitempty"`
	Footer     string        `json:"footer,omitempty"`
}

// TotalQuantity sums the quantities across all items.
func (r *Receipt) TotalQuantity() int {
	var qty int
	for _, item := range r.Items {
		qty += item.Quantity
	}
	return qty
}
