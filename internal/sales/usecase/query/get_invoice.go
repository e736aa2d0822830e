package query

import (
	"context"
	"fmt"
	"time"

	"github.com/aungmyo/ims-backend/internal/sales/domain"
)

// GetInvoiceQuery represents the query to get an invoice with its items
type GetInvoiceQuery struct {
	InvoiceID uint
}

// GetInvoiceHandler handles get invoice query
type GetInvoiceHandler struct {
	invoices domain.InvoiceRepository
}

// NewGetInvoiceHandler creates a new get invoice handler
func NewGetInvoiceHandler(invoices domain.InvoiceRepository) *GetInvoiceHandler {
	return &GetInvoiceHandler{invoices: invoices}
}

// Handle executes the get invoice query
func (h *GetInvoiceHandler) Handle(ctx context.Context, q GetInvoiceQuery) (*domain.Invoice, error) {
	if q.InvoiceID == 0 {
		return nil, domain.ErrInvoiceNotFound
	}

	invoice, err := h.invoices.FindByID(ctx, q.InvoiceID)
	if err != nil {
		return nil, domain.ErrInvoiceNotFound
	}

	return invoice, nil
}

// ListInvoicesQuery represents the query to list invoices
type ListInvoicesQuery struct {
	From       *time.Time
	To         *time.Time
	CustomerID uint
	Limit      int
	Offset     int
}

// ListInvoicesHandler handles list invoices query
type ListInvoicesHandler struct {
	invoices domain.InvoiceRepository
}

// NewListInvoicesHandler creates a new list invoices handler
func NewListInvoicesHandler(invoices domain.InvoiceRepository) *ListInvoicesHandler {
	return &ListInvoicesHandler{invoices: invoices}
}

// Handle executes the list invoices query
func (h *ListInvoicesHandler) Handle(ctx context.Context, q ListInvoicesQuery) ([]domain.Invoice, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	var (
		invoices []domain.Invoice
		err      error
	)
	switch {
	case q.CustomerID != 0:
		invoices, err = h.invoices.FindByCustomer(ctx, q.CustomerID, q.Limit, q.Offset)
	case q.From != nil && q.To != nil:
		invoices, err = h.invoices.FindByDateRange(ctx, *q.From, *q.To, q.Limit, q.Offset)
	default:
		invoices, err = h.invoices.FindAll(ctx, q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}
