package repository

import (
	"context"
	"time"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
}

// ExpenseFilterParams contains filtering parameters for expense queries
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Category   string
	Search     string // matched against description and paid_to
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpenseCategoryRepository defines the interface for expense category data operations
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, category *entity.ExpenseCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error)
	Update(ctx context.Context, category *entity.ExpenseCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.ExpenseCategory, error)
}
