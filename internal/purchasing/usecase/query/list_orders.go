package query

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
)

// ListOrdersQuery represents the query to list purchase orders
type ListOrdersQuery struct {
	Status string
	Limit  int
	Offset int
}

// ListOrdersHandler handles purchase order list queries
type ListOrdersHandler struct {
	orders domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]domain.PurchaseOrder, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	orders, err := h.orders.FindAll(ctx, q.Status, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// ListSuppliersQuery represents the query to list suppliers
type ListSuppliersQuery struct {
	Limit  int
	Offset int
}

// ListSuppliersHandler handles supplier list queries
type ListSuppliersHandler struct {
	suppliers domain.SupplierRepository
}

// NewListSuppliersHandler creates a new list suppliers handler
func NewListSuppliersHandler(suppliers domain.SupplierRepository) *ListSuppliersHandler {
	return &ListSuppliersHandler{suppliers: suppliers}
}

// Handle executes the list suppliers query
func (h *ListSuppliersHandler) Handle(ctx context.Context, q ListSuppliersQuery) ([]domain.Supplier, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	suppliers, err := h.suppliers.FindAll(ctx, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}
