package query

import (
	"context"
	"fmt"
	"sort"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// CategoryValue is the aggregated stock position of one category
type CategoryValue struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	ProductCount int     `json:"product_count"`
	TotalStock   int     `json:"total_stock"`
	StockValue   float64 `json:"stock_value"`
}

// GetCategoryValuesHandler handles stock-by-category report queries
type GetCategoryValuesHandler struct {
	products   catalogdomain.ProductRepository
	categories catalogdomain.CategoryRepository
}

// NewGetCategoryValuesHandler creates a new category values handler
func NewGetCategoryValuesHandler(
	products catalogdomain.ProductRepository,
	categories catalogdomain.CategoryRepository,
) *GetCategoryValuesHandler {
	return &GetCategoryValuesHandler{products: products, categories: categories}
}

// Handle executes the category values query, ordered by stock value descending
func (h *GetCategoryValuesHandler) Handle(ctx context.Context) ([]CategoryValue, error) {
	categories, err := h.categories.FindAll(ctx, 1000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	byID := make(map[uint]*CategoryValue, len(categories))
	for _, c := range categories {
		byID[c.ID] = &CategoryValue{CategoryID: c.ID, CategoryName: c.Name}
	}

	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		page, err := h.products.FindAll(ctx, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}
		for _, p := range page {
			value, ok := byID[p.CategoryID]
			if !ok {
				continue
			}
			value.ProductCount++
			value.TotalStock += p.Stock
			value.StockValue += p.StockValue()
		}
		if len(page) < pageSize {
			break
		}
	}

	values := make([]CategoryValue, 0, len(byID))
	for _, v := range byID {
		values = append(values, *v)
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].StockValue > values[j].StockValue
	})
	return values, nil
}
