package query

import (
	"context"
	"fmt"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// LowStockItem is one catalog entry at or below its reorder threshold
type LowStockItem struct {
	ProductID uint   `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"min_stock"`
	Shortfall int    `json:"shortfall"`
}

// GetLowStockHandler handles low stock report queries
type GetLowStockHandler struct {
	products catalogdomain.ProductRepository
}

// NewGetLowStockHandler creates a new low stock handler
func NewGetLowStockHandler(products catalogdomain.ProductRepository) *GetLowStockHandler {
	return &GetLowStockHandler{products: products}
}

// Handle executes the low stock query
func (h *GetLowStockHandler) Handle(ctx context.Context) ([]LowStockItem, error) {
	products, err := h.products.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load low stock products: %w", err)
	}

	items := make([]LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, LowStockItem{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
			Shortfall: p.MinStock - p.Stock,
		})
	}
	return items, nil
}
