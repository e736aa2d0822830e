package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ProductID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	products domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(products domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{products: products}
}

// Handle executes the delete product command (soft delete)
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("invalid product id")
	}

	if _, err := h.products.FindByID(ctx, cmd.ProductID); err != nil {
		return fmt.Errorf("product not found")
	}

	if err := h.products.Delete(ctx, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
