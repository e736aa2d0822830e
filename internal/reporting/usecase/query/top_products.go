package query

import (
	"context"
	"fmt"
	"time"

	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
)

// TopProductsQuery represents the query for best-selling products
type TopProductsQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}

// GetTopProductsHandler handles top product queries
type GetTopProductsHandler struct {
	invoices salesdomain.InvoiceRepository
}

// NewGetTopProductsHandler creates a new top products handler
func NewGetTopProductsHandler(invoices salesdomain.InvoiceRepository) *GetTopProductsHandler {
	return &GetTopProductsHandler{invoices: invoices}
}

// Handle executes the top products query
func (h *GetTopProductsHandler) Handle(ctx context.Context, q TopProductsQuery) ([]salesdomain.ProductSales, error) {
	if !q.From.Before(q.To) {
		return nil, fmt.Errorf("report window is empty")
	}
	if q.Limit <= 0 || q.Limit > 50 {
		q.Limit = 10
	}

	products, err := h.invoices.TopProducts(ctx, q.From, q.To, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}
	return products, nil
}
