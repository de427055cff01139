package handler

import (
	"github.com/akfoods/pos-api/internal/application/service"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/response"
	"github.com/akfoods/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillHandler handles bill history HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// List handles listing bills with filters
// @Summary List bills
// @Tags bills
// @Router /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	var pag pagination.PaginationParams
	if err := c.ShouldBindQuery(&pag); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pag,
		Search:     c.Query("search"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	}

	if v := c.Query("order_type"); v != "" {
		orderType := enum.OrderType(v)
		if !orderType.Valid() {
			response.BadRequest(c, "Invalid order type")
			return
		}
		params.OrderType = &orderType
	}

	if v := c.Query("payment_method"); v != "" {
		paymentMethod := enum.PaymentMethod(v)
		if !paymentMethod.Valid() {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		params.PaymentMethod = &paymentMethod
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles retrieving a single bill with its items
// @Summary Get bill
// @Tags bills
// @Router /bills/{id} [get]
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Reprint handles reprinting a bill's receipt
// @Summary Reprint receipt
// @Tags bills
// @Router /bills/{id}/reprint [post]
func (h *BillHandler) Reprint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	receipt, err := h.billingService.ReprintReceipt(c.Request.Context(), id)
	if err != nil {
		// The receipt still renders when the printer is offline
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt reprinted", receipt)
}

// ReprintKOT handles resending a bill to the kitchen printer
// @Summary Reprint kitchen order ticket
// @Tags bills
// @Router /bills/{id}/reprint-kot [post]
func (h *BillHandler) ReprintKOT(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	receipt, err := h.billingService.ReprintKOT(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.OK(c, "KOT generated but printing failed", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "KOT reprinted", receipt)
}
