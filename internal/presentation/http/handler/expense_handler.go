package handler

import (
	"time"

	"github.com/akfoods/pos-api/internal/application/service"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/request"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/response"
	"github.com/akfoods/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles expense tracking HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses with filters
// @Summary List expenses
// @Tags expenses
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var pag pagination.PaginationParams
	if err := c.ShouldBindQuery(&pag); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: &pag,
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Get handles retrieving a single expense
// @Summary Get expense
// @Tags expenses
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Create handles recording a new expense
// @Summary Create expense
// @Tags expenses
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	paymentMethod := enum.PaymentMethodCash
	if req.PaymentMethod != "" {
		paymentMethod = enum.PaymentMethod(req.PaymentMethod)
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		Date:          date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		PaidTo:        req.PaidTo,
		PaymentMethod: paymentMethod,
		ReceiptImage:  req.ReceiptImage,
		CreatedBy:     GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Update handles updating an expense
// @Summary Update expense
// @Tags expenses
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateExpenseInput{
		Category:     req.Category,
		Description:  req.Description,
		Amount:       req.Amount,
		PaidTo:       req.PaidTo,
		ReceiptImage: req.ReceiptImage,
	}
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}
	if req.PaymentMethod != nil {
		paymentMethod := enum.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &paymentMethod
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
// @Summary Delete expense
// @Tags expenses
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// ListCategories handles listing expense categories
// @Summary List expense categories
// @Tags expenses
// @Router /expenses/categories [get]
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	categories, err := h.expenseService.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense categories retrieved successfully", categories)
}

// CreateCategory handles creating an expense category
// @Summary Create expense category
// @Tags expenses
// @Router /expenses/categories [post]
func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req request.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categoryType := req.CategoryType
	if categoryType == "" {
		categoryType = "expense"
	}

	category, err := h.expenseService.CreateCategory(c.Request.Context(), req.CategoryName, categoryType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense category created successfully", category)
}
