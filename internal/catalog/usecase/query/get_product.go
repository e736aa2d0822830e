package query

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ProductID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	products domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(products domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{products: products}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.products.FindByID(ctx, q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	return product, nil
}
