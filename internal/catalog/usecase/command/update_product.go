package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product.
// Stock is deliberately absent: stock mutations go through the ledger.
type UpdateProductCommand struct {
	ProductID  uint
	Code       string
	Name       string
	CategoryID uint
	Price      float64
	Cost       float64
	MinStock   int
	IsActive   bool
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, categories: categories}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.MinStock < 0 {
		return nil, fmt.Errorf("min stock cannot be negative")
	}

	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	if cmd.Code != "" && cmd.Code != product.Code {
		if existing, _ := h.products.FindByCode(ctx, cmd.Code); existing != nil {
			return nil, fmt.Errorf("product code already exists")
		}
		product.Code = cmd.Code
	}
	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.CategoryID != 0 {
		if _, err := h.categories.FindByID(ctx, cmd.CategoryID); err != nil {
			return nil, fmt.Errorf("category not found")
		}
		product.CategoryID = cmd.CategoryID
	}
	product.Price = cmd.Price
	product.Cost = cmd.Cost
	product.MinStock = cmd.MinStock
	product.IsActive = cmd.IsActive

	if err := h.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
