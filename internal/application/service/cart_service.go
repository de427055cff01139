package service

import (
	"sync"

	"github.com/akfoods/pos-api/internal/domain/cart"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/pkg/apperror"
)

// terminalCart pairs a cart with its own lock and the in-flight checkout flag.
// All cart mutation for one terminal serializes on mu.
type terminalCart struct {
	mu          sync.Mutex
	cart        *cart.Cart
	checkingOut bool
}

// CartService owns the live carts, one per terminal. Carts are created lazily
// on first access and live for the process lifetime; they are working state,
// not durable data.
type CartService struct {
	mu        sync.Mutex
	terminals map[string]*terminalCart

	taxMu         sync.RWMutex
	taxEnabled    bool
	taxPercentage float64
}

// NewCartService creates a new cart service with the given store-level tax
// configuration.
func NewCartService(taxEnabled bool, taxPercentage float64) *CartService {
	return &CartService{
		terminals:     make(map[string]*terminalCart),
		taxEnabled:    taxEnabled,
		taxPercentage: taxPercentage,
	}
}

func (s *CartService) terminal(id string) *terminalCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	tc, ok := s.terminals[id]
	if !ok {
		c := cart.New()
		s.taxMu.RLock()
		c.SetTaxConfig(s.taxEnabled, s.taxPercentage)
		s.taxMu.RUnlock()
		tc = &terminalCart{cart: c}
		s.terminals[id] = tc
	}
	return tc
}

// withCart runs fn under the terminal's lock and returns the resulting
// snapshot.
func (s *CartService) withCart(terminalID string, fn func(c *cart.Cart)) cart.State {
	tc := s.terminal(terminalID)
	tc.mu.Lock()
	defer tc.mu.Unlock()
	fn(tc.cart)
	return tc.cart.Snapshot()
}

// GetCart returns the current state of a terminal's cart.
func (s *CartService) GetCart(terminalID string) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) {})
}

// AddItem adds a menu item to the cart, or bumps its quantity if already
// present.
func (s *CartService) AddItem(terminalID string, item cart.CatalogItem) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) { c.AddItem(item) })
}

// RemoveItem removes a line from the cart.
func (s *CartService) RemoveItem(terminalID, itemID string) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) { c.RemoveItem(itemID) })
}

// UpdateQuantity sets a line's quantity.
func (s *CartService) UpdateQuantity(terminalID, itemID string, quantity int) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) { c.UpdateQuantity(itemID, quantity) })
}

// UpdateNote sets a line's kitchen note.
func (s *CartService) UpdateNote(terminalID, itemID, note string) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) { c.UpdateNote(itemID, note) })
}

// UpdateExtraCharge sets a line's per-unit surcharge.
func (s *CartService) UpdateExtraCharge(terminalID, itemID string, amount float64) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) { c.UpdateExtraCharge(itemID, amount) })
}

// UpdateOrderInput carries the optional order-level fields of a cart update.
// Nil fields are left untouched.
type UpdateOrderInput struct {
	CustomerName   *string
	CustomerPhone  *string
	OrderType      *enum.OrderType
	PaymentMethod  *enum.PaymentMethod
	Discount       *float64
	AmountPaid     *float64
	DeliveryCharge *float64
}

// UpdateOrder applies order-level field changes to the cart.
func (s *CartService) UpdateOrder(terminalID string, input UpdateOrderInput) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) {
		if input.CustomerName != nil {
			c.SetCustomerName(*input.CustomerName)
		}
		if input.CustomerPhone != nil {
			c.SetCustomerPhone(*input.CustomerPhone)
		}
		if input.OrderType != nil {
			c.SetOrderType(*input.OrderType)
		}
		if input.PaymentMethod != nil {
			c.SetPaymentMethod(*input.PaymentMethod)
		}
		if input.Discount != nil {
			c.SetDiscount(*input.Discount)
		}
		if input.AmountPaid != nil {
			c.SetAmountPaid(*input.AmountPaid)
		}
		if input.DeliveryCharge != nil {
			c.SetDeliveryCharge(*input.DeliveryCharge)
		}
	})
}

// ClearCart empties the cart and resets order fields. The store tax
// configuration is untouched.
func (s *CartService) ClearCart(terminalID string) cart.State {
	return s.withCart(terminalID, func(c *cart.Cart) { c.Clear() })
}

// SetTaxConfig updates the store-level tax configuration and pushes it into
// every live cart, so totals on open orders reflect the change immediately.
func (s *CartService) SetTaxConfig(enabled bool, percentage float64) {
	s.taxMu.Lock()
	s.taxEnabled = enabled
	s.taxPercentage = percentage
	s.taxMu.Unlock()

	s.mu.Lock()
	terminals := make([]*terminalCart, 0, len(s.terminals))
	for _, tc := range s.terminals {
		terminals = append(terminals, tc)
	}
	s.mu.Unlock()

	for _, tc := range terminals {
		tc.mu.Lock()
		tc.cart.SetTaxConfig(enabled, percentage)
		tc.mu.Unlock()
	}
}

// BeginCheckout captures the cart state for checkout and marks the terminal
// as checking out. It fails if the cart is empty or a checkout is already in
// flight for this terminal. Every successful call must be paired with
// FinishCheckout.
func (s *CartService) BeginCheckout(terminalID string) (cart.State, error) {
	tc := s.terminal(terminalID)
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.checkingOut {
		return cart.State{}, apperror.ErrCheckoutInFlight
	}
	if tc.cart.IsEmpty() {
		return cart.State{}, apperror.ErrEmptyCart
	}

	tc.checkingOut = true
	return tc.cart.Snapshot(), nil
}

// FinishCheckout releases the checkout guard. When the checkout succeeded the
// cart is cleared; on failure it is left intact so the order can be retried.
func (s *CartService) FinishCheckout(terminalID string, succeeded bool) {
	tc := s.terminal(terminalID)
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.checkingOut = false
	if succeeded {
		tc.cart.Clear()
	}
}
