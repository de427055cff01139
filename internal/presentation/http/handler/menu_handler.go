package handler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akfoods/pos-api/internal/application/service"
	"github.com/akfoods/pos-api/internal/config"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/request"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuHandler handles menu management HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
	storage     *config.StorageConfig
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, storage *config.StorageConfig) *MenuHandler {
	return &MenuHandler{menuService: menuService, storage: storage}
}

// List handles listing menu items
// @Summary List menu items
// @Tags menu
// @Router /menu/items [get]
func (h *MenuHandler) List(c *gin.Context) {
	params := &repository.MenuFilterParams{
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		AvailableOnly: c.Query("available") == "true",
	}

	items, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved successfully", items)
}

// Get handles retrieving a single menu item
// @Summary Get menu item
// @Tags menu
// @Router /menu/items/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles creating a menu item
// @Summary Create menu item
// @Tags menu
// @Router /menu/items [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		ItemName:    req.ItemName,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles updating a menu item
// @Summary Update menu item
// @Tags menu
// @Router /menu/items/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, &service.UpdateMenuItemInput{
		ItemName:    req.ItemName,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Delete handles deleting a menu item
// @Summary Delete menu item
// @Tags menu
// @Router /menu/items/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}

// UploadImage handles uploading a menu item's image. The file is written to
// local disk under the configured storage path and served from /uploads.
// @Summary Upload menu item image
// @Tags menu
// @Router /menu/items/{id}/image [post]
func (h *MenuHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}
	if file.Size > h.storage.UploadMaxSize {
		response.BadRequest(c, "Image exceeds the maximum upload size")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.BadRequest(c, "Unsupported image format")
		return
	}

	dir := filepath.Join(h.storage.Path, "menu")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		response.Error(c, err)
		return
	}

	// One image per item, keyed by the item ID
	filename := id.String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		response.Error(c, err)
		return
	}

	imageURL := "/uploads/menu/" + filename
	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, &service.UpdateMenuItemInput{
		ImageURL: &imageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image uploaded successfully", item)
}

// SetAvailability handles toggling a menu item's availability
// @Summary Set menu item availability
// @Tags menu
// @Router /menu/items/{id}/availability [put]
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.menuService.SetAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Availability updated", nil)
}

// ListCategories handles listing menu categories
// @Summary List categories
// @Tags menu
// @Router /menu/categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a menu category
// @Summary Create category
// @Tags menu
// @Router /menu/categories [post]
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), req.CategoryName, req.DisplayOrder)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles updating a menu category
// @Summary Update category
// @Tags menu
// @Router /menu/categories/{id} [put]
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.menuService.UpdateCategory(c.Request.Context(), id, req.CategoryName, req.DisplayOrder)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a menu category
// @Summary Delete category
// @Tags menu
// @Router /menu/categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}
