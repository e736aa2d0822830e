package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name        string
	Description string
	IsActive    bool
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	categories domain.CategoryRepository
}

func NewCreateCategoryHandler(categories domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{categories: categories}
}

func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category := &domain.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
		IsActive:    cmd.IsActive,
	}

	if err := h.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategoryCommand represents the command to update a category
type UpdateCategoryCommand struct {
	CategoryID  uint
	Name        string
	Description string
	IsActive    bool
}

// UpdateCategoryHandler handles category update
type UpdateCategoryHandler struct {
	categories domain.CategoryRepository
}

func NewUpdateCategoryHandler(categories domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{categories: categories}
}

func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	if cmd.CategoryID == 0 {
		return nil, fmt.Errorf("invalid category id")
	}

	category, err := h.categories.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category not found")
	}

	if cmd.Name != "" {
		category.Name = cmd.Name
	}
	category.Description = cmd.Description
	category.IsActive = cmd.IsActive

	if err := h.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	CategoryID uint
}

// DeleteCategoryHandler handles category deletion (soft delete)
type DeleteCategoryHandler struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
}

func NewDeleteCategoryHandler(categories domain.CategoryRepository, products domain.ProductRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories, products: products}
}

func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if cmd.CategoryID == 0 {
		return fmt.Errorf("invalid category id")
	}

	if _, err := h.categories.FindByID(ctx, cmd.CategoryID); err != nil {
		return fmt.Errorf("category not found")
	}

	// Refuse deletion while products still reference the category
	products, err := h.products.FindByCategory(ctx, cmd.CategoryID, 1, 0)
	if err != nil {
		return fmt.Errorf("failed to check category products: %w", err)
	}
	if len(products) > 0 {
		return fmt.Errorf("category still has products")
	}

	if err := h.categories.Delete(ctx, cmd.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
