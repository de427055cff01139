package request

// CreateMenuItemRequest creates a menu item
type CreateMenuItemRequest struct {
	ItemName    string  `json:"item_name" binding:"required,min=1,max=255"`
	Category    string  `json:"category" binding:"required,min=1,max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=255"`
}

// UpdateMenuItemRequest updates a menu item. Absent fields are left unchanged.
type UpdateMenuItemRequest struct {
	ItemName    *string  `json:"item_name,omitempty" binding:"omitempty,min=1,max=255"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty" binding:"omitempty,max=255"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// SetAvailabilityRequest toggles a menu item's availability
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// CreateCategoryRequest creates a menu category
type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required,min=1,max=255"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

// UpdateCategoryRequest updates a menu category
type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name,omitempty" binding:"omitempty,min=1,max=255"`
	DisplayOrder *int    `json:"display_order,omitempty" binding:"omitempty,min=0"`
}
