package service

import (
	"context"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// MenuService handles menu item and category management
type MenuService struct {
	menuRepo     repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	menuRepo repository.MenuItemRepository,
	categoryRepo repository.CategoryRepository,
) *MenuService {
	return &MenuService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateMenuItemInput represents the create menu item input
type CreateMenuItemInput struct {
	ItemName    string
	Category    string
	Price       float64
	Description *string
	ImageURL    *string
}

// CreateMenuItem creates a new menu item. Unknown categories are created on
// the fly so the billing grid never shows an orphaned item.
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	category, err := s.categoryRepo.GetByName(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		if err := s.categoryRepo.Create(ctx, &entity.Category{CategoryName: input.Category}); err != nil {
			return nil, err
		}
	}

	item := &entity.MenuItem{
		ItemName:    input.ItemName,
		Category:    input.Category,
		Price:       toCents(input.Price),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItemInput represents the update menu item input. Nil fields are
// left unchanged.
type UpdateMenuItemInput struct {
	ItemName    *string
	Category    *string
	Price       *float64
	Description *string
	ImageURL    *string
	IsAvailable *bool
}

// UpdateMenuItem updates an existing menu item
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.Price = toCents(*input.Price)
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// DeleteMenuItem soft-deletes a menu item. Past bills keep the item name as
// captured at sale time, so deleting is always safe.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// ListMenuItems lists menu items with filtering
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuFilterParams) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx, params)
}

// SetAvailability toggles whether an item can be added to carts
func (s *MenuService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.SetAvailability(ctx, id, available)
}

// ListCategories lists all menu categories in display order
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory creates a new menu category
func (s *MenuService) CreateCategory(ctx context.Context, name string, displayOrder int) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{
		CategoryName: name,
		DisplayOrder: displayOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates a category's name or display order
func (s *MenuService) UpdateCategory(ctx context.Context, id uuid.UUID, name *string, displayOrder *int) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if name != nil {
		category.CategoryName = *name
	}
	if displayOrder != nil {
		category.DisplayOrder = *displayOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a menu category
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
