package repository

import (
	"context"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuFilterParams) ([]entity.MenuItem, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

// MenuFilterParams contains filtering parameters for menu queries
type MenuFilterParams struct {
	Category      string
	Search        string
	AvailableOnly bool
}

// CategoryRepository defines the interface for menu category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}
