package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Code       string
	Name       string
	CategoryID uint
	Price      float64
	Cost       float64
	Stock      int
	MinStock   int
	IsActive   bool
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *CreateProductHandler {
	return &CreateProductHandler{products: products, categories: categories}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Code == "" {
		return nil, fmt.Errorf("product code is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Cost < 0 {
		return nil, fmt.Errorf("cost cannot be negative")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if cmd.MinStock < 0 {
		return nil, fmt.Errorf("min stock cannot be negative")
	}

	if existing, _ := h.products.FindByCode(ctx, cmd.Code); existing != nil {
		return nil, fmt.Errorf("product code already exists")
	}

	if cmd.CategoryID != 0 {
		if _, err := h.categories.FindByID(ctx, cmd.CategoryID); err != nil {
			return nil, fmt.Errorf("category not found")
		}
	}

	product := &domain.Product{
		Code:       cmd.Code,
		Name:       cmd.Name,
		CategoryID: cmd.CategoryID,
		Price:      cmd.Price,
		Cost:       cmd.Cost,
		Stock:      cmd.Stock,
		MinStock:   cmd.MinStock,
		IsActive:   cmd.IsActive,
	}

	if err := h.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
