package service

import (
	"context"
	"time"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/akfoods/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseService handles expense tracking
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Date          time.Time
	Category      string
	Description   string
	Amount        float64
	PaidTo        *string
	PaymentMethod enum.PaymentMethod
	ReceiptImage  *string
	CreatedBy     *uuid.UUID
}

// CreateExpense records a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	expense := &entity.Expense{
		Date:          input.Date,
		Category:      input.Category,
		Description:   input.Description,
		Amount:        toCents(input.Amount),
		PaidTo:        input.PaidTo,
		PaymentMethod: input.PaymentMethod,
		ReceiptImage:  input.ReceiptImage,
		CreatedBy:     input.CreatedBy,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpenseInput represents the update expense input. Nil fields are left
// unchanged.
type UpdateExpenseInput struct {
	Date          *time.Time
	Category      *string
	Description   *string
	Amount        *float64
	PaidTo        *string
	PaymentMethod *enum.PaymentMethod
	ReceiptImage  *string
}

// UpdateExpense updates an existing expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be greater than zero")
		}
		expense.Amount = toCents(*input.Amount)
	}
	if input.PaidTo != nil {
		expense.PaidTo = input.PaidTo
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.ReceiptImage != nil {
		expense.ReceiptImage = input.ReceiptImage
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses lists expenses with filtering and pagination
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// ListCategories lists expense categories
func (s *ExpenseService) ListCategories(ctx context.Context, activeOnly bool) ([]entity.ExpenseCategory, error) {
	return s.categoryRepo.List(ctx, activeOnly)
}

// CreateCategory creates a new expense category
func (s *ExpenseService) CreateCategory(ctx context.Context, name, categoryType string) (*entity.ExpenseCategory, error) {
	category := &entity.ExpenseCategory{
		CategoryName: name,
		CategoryType: categoryType,
		IsActive:     true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
