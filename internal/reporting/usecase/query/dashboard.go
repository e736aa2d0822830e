package query

import (
	"context"
	"fmt"
	"time"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
)

// Dashboard is the at-a-glance summary for the storefront landing screen
type Dashboard struct {
	ProductCount    int64   `json:"product_count"`
	StockValue      float64 `json:"stock_value"`
	LowStockCount   int     `json:"low_stock_count"`
	OutOfStockCount int     `json:"out_of_stock_count"`
	TodaySales      int64   `json:"today_sales"`
	TodayRevenue    float64 `json:"today_revenue"`
}

// GetDashboardHandler handles dashboard queries
type GetDashboardHandler struct {
	products catalogdomain.ProductRepository
	invoices salesdomain.InvoiceRepository
}

// NewGetDashboardHandler creates a new dashboard handler
func NewGetDashboardHandler(
	products catalogdomain.ProductRepository,
	invoices salesdomain.InvoiceRepository,
) *GetDashboardHandler {
	return &GetDashboardHandler{products: products, invoices: invoices}
}

// Handle executes the dashboard query. Counts and values are computed from a
// full product scan; catalogs at this scale stay in the low thousands.
func (h *GetDashboardHandler) Handle(ctx context.Context) (*Dashboard, error) {
	count, err := h.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	dashboard := &Dashboard{ProductCount: count}

	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		page, err := h.products.FindAll(ctx, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}
		for _, p := range page {
			dashboard.StockValue += p.StockValue()
			if p.IsOutOfStock() {
				dashboard.OutOfStockCount++
			} else if p.IsLowStock() {
				dashboard.LowStockCount++
			}
		}
		if len(page) < pageSize {
			break
		}
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	totals, err := h.invoices.Totals(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate today's sales: %w", err)
	}
	dashboard.TodaySales = totals.Count
	dashboard.TodayRevenue = totals.Revenue

	return dashboard, nil
}
