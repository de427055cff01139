package handler

import (
	"github.com/akfoods/pos-api/internal/application/service"
	"github.com/akfoods/pos-api/internal/domain/cart"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/request"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles the live cart endpoints. Every route is keyed by the
// terminal ID in the path; each terminal works on its own cart.
type CartHandler struct {
	cartService    *service.CartService
	billingService *service.BillingService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, billingService *service.BillingService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		billingService: billingService,
	}
}

// Get returns the terminal's current cart
// @Summary Get cart
// @Tags cart
// @Router /carts/{terminal} [get]
func (h *CartHandler) Get(c *gin.Context) {
	state := h.cartService.GetCart(c.Param("terminal"))
	response.OK(c, "Cart retrieved successfully", state)
}

// AddItem adds a menu item to the cart
// @Summary Add item to cart
// @Tags cart
// @Router /carts/{terminal}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state := h.cartService.AddItem(c.Param("terminal"), cart.CatalogItem{
		ID:    req.ItemID,
		Name:  req.Name,
		Price: req.Price,
	})
	response.OK(c, "Item added to cart", state)
}

// RemoveItem removes a line from the cart
// @Summary Remove item from cart
// @Tags cart
// @Router /carts/{terminal}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	state := h.cartService.RemoveItem(c.Param("terminal"), c.Param("item_id"))
	response.OK(c, "Item removed from cart", state)
}

// UpdateQuantity sets a line's quantity
// @Summary Update item quantity
// @Tags cart
// @Router /carts/{terminal}/items/{item_id}/quantity [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req request.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state := h.cartService.UpdateQuantity(c.Param("terminal"), c.Param("item_id"), req.Quantity)
	response.OK(c, "Quantity updated", state)
}

// UpdateNote sets a line's kitchen note
// @Summary Update item note
// @Tags cart
// @Router /carts/{terminal}/items/{item_id}/note [put]
func (h *CartHandler) UpdateNote(c *gin.Context) {
	var req request.UpdateCartNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state := h.cartService.UpdateNote(c.Param("terminal"), c.Param("item_id"), req.Note)
	response.OK(c, "Note updated", state)
}

// UpdateExtraCharge sets a line's per-unit surcharge
// @Summary Update item extra charge
// @Tags cart
// @Router /carts/{terminal}/items/{item_id}/extra-charge [put]
func (h *CartHandler) UpdateExtraCharge(c *gin.Context) {
	var req request.UpdateCartExtraChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state := h.cartService.UpdateExtraCharge(c.Param("terminal"), c.Param("item_id"), req.Amount)
	response.OK(c, "Extra charge updated", state)
}

// UpdateOrder updates order-level cart fields
// @Summary Update cart order fields
// @Tags cart
// @Router /carts/{terminal}/order [put]
func (h *CartHandler) UpdateOrder(c *gin.Context) {
	var req request.UpdateCartOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := service.UpdateOrderInput{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Discount:       req.Discount,
		AmountPaid:     req.AmountPaid,
		DeliveryCharge: req.DeliveryCharge,
	}
	if req.OrderType != nil {
		orderType := enum.OrderType(*req.OrderType)
		input.OrderType = &orderType
	}
	if req.PaymentMethod != nil {
		paymentMethod := enum.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &paymentMethod
	}

	state := h.cartService.UpdateOrder(c.Param("terminal"), input)
	response.OK(c, "Cart updated", state)
}

// Clear empties the cart
// @Summary Clear cart
// @Tags cart
// @Router /carts/{terminal} [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	state := h.cartService.ClearCart(c.Param("terminal"))
	response.OK(c, "Cart cleared", state)
}

// Checkout finalizes the cart into a persisted bill
// @Summary Checkout
// @Tags cart
// @Router /carts/{terminal}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.billingService.Checkout(c.Request.Context(), c.Param("terminal"), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed", result)
}
