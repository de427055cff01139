package repository

import (
	"context"
	"errors"

	"github.com/akfoods/pos-api/internal/domain/entity"
	domainRepo "github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		query = query.Where("description ILIKE ? OR paid_to ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error

	return expenses, total, err
}

type expenseCategoryRepository struct {
	db *gorm.DB
}

// NewExpenseCategoryRepository creates a new expense category repository
func NewExpenseCategoryRepository(db *gorm.DB) domainRepo.ExpenseCategoryRepository {
	return &expenseCategoryRepository{db: db}
}

func (r *expenseCategoryRepository) Create(ctx context.Context, category *entity.ExpenseCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *expenseCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var category entity.ExpenseCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *expenseCategoryRepository) Update(ctx context.Context, category *entity.ExpenseCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *expenseCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseCategory{}, "id = ?", id).Error
}

func (r *expenseCategoryRepository) List(ctx context.Context, activeOnly bool) ([]entity.ExpenseCategory, error) {
	var categories []entity.ExpenseCategory

	query := r.db.WithContext(ctx).Model(&entity.ExpenseCategory{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("category_name ASC").Find(&categories).Error
	return categories, err
}
