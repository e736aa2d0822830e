package query

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	CategoryID uint
	Limit      int
	Offset     int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	products domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(products domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{products: products}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	var (
		products []domain.Product
		err      error
	)
	if q.CategoryID != 0 {
		products, err = h.products.FindByCategory(ctx, q.CategoryID, q.Limit, q.Offset)
	} else {
		products, err = h.products.FindAll(ctx, q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	Limit  int
	Offset int
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	categories domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(categories domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{categories: categories}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) ([]domain.Category, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	categories, err := h.categories.FindAll(ctx, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
