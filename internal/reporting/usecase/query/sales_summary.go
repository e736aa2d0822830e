package query

import (
	"context"
	"fmt"
	"time"

	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
)

// SalesSummaryQuery represents the query for sales figures over a window
type SalesSummaryQuery struct {
	From time.Time
	To   time.Time
}

// SalesSummary reports completed-sale figures over a date window
type SalesSummary struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	SaleCount    int64     `json:"sale_count"`
	Revenue      float64   `json:"revenue"`
	AverageValue float64   `json:"average_value"`
}

// GetSalesSummaryHandler handles sales summary queries
type GetSalesSummaryHandler struct {
	invoices salesdomain.InvoiceRepository
}

// NewGetSalesSummaryHandler creates a new sales summary handler
func NewGetSalesSummaryHandler(invoices salesdomain.InvoiceRepository) *GetSalesSummaryHandler {
	return &GetSalesSummaryHandler{invoices: invoices}
}

// Handle executes the sales summary query. Cancelled invoices are excluded
// from all figures.
func (h *GetSalesSummaryHandler) Handle(ctx context.Context, q SalesSummaryQuery) (*SalesSummary, error) {
	if !q.From.Before(q.To) {
		return nil, fmt.Errorf("summary window is empty")
	}

	totals, err := h.invoices.Totals(ctx, q.From, q.To)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	summary := &SalesSummary{
		From:      q.From,
		To:        q.To,
		SaleCount: totals.Count,
		Revenue:   totals.Revenue,
	}
	if totals.Count > 0 {
		summary.AverageValue = totals.Revenue / float64(totals.Count)
	}
	return summary, nil
}
