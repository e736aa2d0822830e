package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

// CancelOrderCommand represents the command to cancel a purchase order
type CancelOrderCommand struct {
	OrderID uint
}

// CancelOrderHandler handles purchase order cancellation
type CancelOrderHandler struct {
	tx     database.TxManager
	orders domain.OrderRepository
}

// NewCancelOrderHandler creates a new cancel order handler
func NewCancelOrderHandler(tx database.TxManager, orders domain.OrderRepository) *CancelOrderHandler {
	return &CancelOrderHandler{tx: tx, orders: orders}
}

// Handle executes the cancel order command. Only pending orders can be
// cancelled: once stock has been received against an order it is part of the
// ledger history and must be corrected through movements instead.
func (h *CancelOrderHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	return h.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := h.orders.FindByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return domain.ErrOrderNotFound
		}
		if order.Status != domain.StatusPending {
			return fmt.Errorf("%w: order %s is %s", domain.ErrNotCancellable, order.Number, order.Status)
		}
		return h.orders.UpdateStatus(ctx, order.ID, domain.StatusCancelled)
	})
}
