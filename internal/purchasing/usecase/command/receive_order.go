package command

import (
	"context"
	"fmt"
	"time"

	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
	"github.com/aungmyo/ims-backend/kafka"
	"github.com/aungmyo/ims-backend/pkg/database"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// ReceiptLine is one delivered line of a purchase order receipt
type ReceiptLine struct {
	ItemID   uint
	Quantity int
}

// ReceiveOrderCommand represents the command to record a delivery against a purchase order
type ReceiveOrderCommand struct {
	OrderID uint
	Lines   []ReceiptLine
	Actor   string
}

// ReceivedItem reports the post-receipt state of one order item
type ReceivedItem struct {
	ItemID            uint
	ProductID         uint
	QuantityReceived  int
	QuantityRemaining int
}

// ReceiveOrderResult is the outcome of a processed receipt
type ReceiveOrderResult struct {
	OrderID     uint
	OrderNumber string
	SupplierID  uint
	Status      string
	Items       []ReceivedItem
}

// ReceiveOrderHandler handles purchase order receipts
type ReceiveOrderHandler struct {
	tx        database.TxManager
	orders    domain.OrderRepository
	ledger    *ledgercommand.ApplyMovementHandler
	publisher *kafka.Publisher
}

// NewReceiveOrderHandler creates a new receive order handler
func NewReceiveOrderHandler(
	tx database.TxManager,
	orders domain.OrderRepository,
	ledger *ledgercommand.ApplyMovementHandler,
	publisher *kafka.Publisher,
) *ReceiveOrderHandler {
	return &ReceiveOrderHandler{tx: tx, orders: orders, ledger: ledger, publisher: publisher}
}

// Handle executes the receive order command. The whole receipt is applied in a
// single transaction: either every line lands on the stock ledger and the
// order items, or none do.
func (h *ReceiveOrderHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) (*ReceiveOrderResult, error) {
	if len(cmd.Lines) == 0 {
		return nil, fmt.Errorf("receipt has no lines")
	}
	for _, line := range cmd.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d requested %d",
				ledgerdomain.ErrInvalidQuantity, line.ItemID, line.Quantity)
		}
	}

	var result *ReceiveOrderResult
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := h.orders.FindByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return domain.ErrOrderNotFound
		}
		if order.Status == domain.StatusReceived || order.Status == domain.StatusCancelled {
			return fmt.Errorf("%w: order %s is %s", domain.ErrOrderClosed, order.Number, order.Status)
		}

		items := make(map[uint]*domain.PurchaseOrderItem, len(order.Items))
		for i := range order.Items {
			items[order.Items[i].ID] = &order.Items[i]
		}

		// Validate every line against the remaining quantities before
		// touching the ledger, so a late over-receipt cannot leave a
		// half-applied delivery behind. The over-receipt check is
		// cumulative: lines naming the same item count together.
		requested := make(map[uint]int, len(cmd.Lines))
		for _, line := range cmd.Lines {
			item, ok := items[line.ItemID]
			if !ok {
				return fmt.Errorf("%w: item %d on order %s", domain.ErrOrderItemNotFound, line.ItemID, order.Number)
			}
			requested[line.ItemID] += line.Quantity
			remaining := item.QuantityOrdered - item.QuantityReceived
			if requested[line.ItemID] > remaining {
				return fmt.Errorf("%w: item %d has %d remaining, got %d",
					domain.ErrOverReceipt, line.ItemID, remaining, requested[line.ItemID])
			}
		}

		for _, line := range cmd.Lines {
			item := items[line.ItemID]
			if _, err := h.ledger.Handle(ctx, ledgercommand.ApplyMovementCommand{
				ProductID: item.ProductID,
				Direction: ledgerdomain.DirectionIn,
				Quantity:  line.Quantity,
				Remark:    fmt.Sprintf("PO receipt %s", order.Number),
				Actor:     cmd.Actor,
			}); err != nil {
				return err
			}

			item.QuantityReceived += line.Quantity
			if err := h.orders.UpdateItemReceived(ctx, item.ID, item.QuantityReceived); err != nil {
				return fmt.Errorf("failed to update received quantity for item %d: %w", item.ID, err)
			}
		}

		status := domain.StatusPartial
		if order.IsFullyReceived() {
			status = domain.StatusReceived
		}
		if err := h.orders.UpdateStatus(ctx, order.ID, status); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		result = &ReceiveOrderResult{
			OrderID:     order.ID,
			OrderNumber: order.Number,
			SupplierID:  order.SupplierID,
			Status:      status,
		}
		for _, item := range order.Items {
			result.Items = append(result.Items, ReceivedItem{
				ItemID:            item.ID,
				ProductID:         item.ProductID,
				QuantityReceived:  item.QuantityReceived,
				QuantityRemaining: item.QuantityOrdered - item.QuantityReceived,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.PurchaseReceivedEvent{
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			SupplierID:  result.SupplierID,
			Status:      result.Status,
			LineCount:   len(cmd.Lines),
			Timestamp:   time.Now(),
		}
		if err := h.publisher.PublishPurchaseReceived(ctx, event); err != nil {
			logger.WithContext(ctx).Error().Err(err).
				Str("order_number", result.OrderNumber).
				Msg("Failed to publish purchase received event")
		}
	}

	return result, nil
}
