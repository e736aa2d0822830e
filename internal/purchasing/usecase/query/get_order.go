package query

import (
	"context"

	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
)

// GetOrderQuery represents the query to fetch one purchase order
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles single purchase order queries
type GetOrderHandler struct {
	orders domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(orders domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*domain.PurchaseOrder, error) {
	order, err := h.orders.FindByID(ctx, q.ID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
