package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/akfoods/pos-api/internal/domain/entity"
	domainRepo "github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Omit("Items").Create(bill).Error
}

func (r *billRepository) CreateItemsBatch(ctx context.Context, items []entity.BillItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.Search != "" {
		query = query.Where("bill_number ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.OrderType != nil {
		query = query.Where("order_type = ?", *params.OrderType)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

// AllocateBillNumber advances the counter inside a transaction so two
// concurrent checkouts can never receive the same number. The counter row
// is seeded at startup; a missing row is a deployment fault.
func (r *billRepository) AllocateBillNumber(ctx context.Context) (string, error) {
	var prefix string
	var next int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := tx.Raw(`
			UPDATE bill_counters
			SET last_number = last_number + 1
			WHERE id = 1
			RETURNING prefix, last_number
		`).Row()
		return row.Scan(&prefix, &next)
	})
	if err != nil {
		return "", fmt.Errorf("failed to allocate bill number: %w", err)
	}

	return fmt.Sprintf("%s-%06d", prefix, next), nil
}
