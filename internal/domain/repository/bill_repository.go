package repository

import (
	"context"
	"time"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	CreateItemsBatch(ctx context.Context, items []entity.BillItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// AllocateBillNumber atomically advances the bill counter and returns the
	// next formatted bill number. Allocated numbers are never reused: a
	// checkout that aborts after allocation leaves a gap in the sequence.
	AllocateBillNumber(ctx context.Context) (string, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string // matched against bill_number and customer_name
	OrderType     *enum.OrderType
	PaymentMethod *enum.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
}
