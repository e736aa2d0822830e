package command

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	"github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/kafka"
	"github.com/aungmyo/ims-backend/pkg/database"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// maxAttempts bounds the retry loop when the guarded stock write detects a
// concurrent modification.
const maxAttempts = 3

// ApplyMovementCommand represents a single stock mutation request
type ApplyMovementCommand struct {
	ProductID uint
	Direction string
	Quantity  int
	Remark    string
	Actor     string
}

// ApplyMovementHandler is the single choke point through which product stock
// changes. Every successful call updates the product row and appends exactly
// one movement row in the same transaction.
type ApplyMovementHandler struct {
	tx        database.TxManager
	products  catalogdomain.ProductRepository
	movements domain.MovementRepository
	publisher *kafka.Publisher
}

// NewApplyMovementHandler creates a new apply movement handler
func NewApplyMovementHandler(
	tx database.TxManager,
	products catalogdomain.ProductRepository,
	movements domain.MovementRepository,
	publisher *kafka.Publisher,
) *ApplyMovementHandler {
	return &ApplyMovementHandler{
		tx:        tx,
		products:  products,
		movements: movements,
		publisher: publisher,
	}
}

// Handle executes the movement. When the caller already runs inside a
// transaction (sale and receipt coordinators), the movement joins it and the
// caller owns commit, rollback and retry. Standalone calls get their own
// transaction plus a bounded retry on conflict.
func (h *ApplyMovementHandler) Handle(ctx context.Context, cmd ApplyMovementCommand) (*domain.StockMovement, error) {
	if cmd.Direction != domain.DirectionIn && cmd.Direction != domain.DirectionOut {
		return nil, domain.ErrInvalidDirection
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, cmd.Quantity)
	}

	if database.InTx(ctx) {
		return h.apply(ctx, cmd)
	}

	var (
		movement *domain.StockMovement
		err      error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = h.tx.WithinTx(ctx, func(ctx context.Context) error {
			var applyErr error
			movement, applyErr = h.apply(ctx, cmd)
			return applyErr
		})
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
		logger.Warn(ctx).
			Uint("product_id", cmd.ProductID).
			Int("attempt", attempt).
			Msg("Stock movement conflicted, retrying")
	}
	if err != nil {
		return nil, err
	}

	h.publish(ctx, movement)
	return movement, nil
}

// apply performs the read-modify-write under the row lock held by the
// surrounding transaction.
func (h *ApplyMovementHandler) apply(ctx context.Context, cmd ApplyMovementCommand) (*domain.StockMovement, error) {
	product, err := h.products.FindByIDForUpdate(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, cmd.ProductID)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	oldStock := product.Stock
	var newStock int
	switch cmd.Direction {
	case domain.DirectionIn:
		newStock = oldStock + cmd.Quantity
	case domain.DirectionOut:
		if cmd.Quantity > oldStock {
			return nil, fmt.Errorf("%w: product %q has %d, requested %d",
				domain.ErrInsufficientStock, product.Code, oldStock, cmd.Quantity)
		}
		newStock = oldStock - cmd.Quantity
	}

	// The row lock makes the guard redundant on PostgreSQL; it stays as the
	// conflict detector for stores without FOR UPDATE semantics.
	updated, err := h.products.UpdateStockGuarded(ctx, product.ID, oldStock, newStock)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	if !updated {
		return nil, domain.ErrConflict
	}

	movement := &domain.StockMovement{
		ProductID: product.ID,
		Direction: cmd.Direction,
		Quantity:  cmd.Quantity,
		OldStock:  oldStock,
		NewStock:  newStock,
		Remark:    cmd.Remark,
		Actor:     cmd.Actor,
	}
	if err := h.movements.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to append stock movement: %w", err)
	}

	return movement, nil
}

// publish emits the movement event after commit; failures are logged, never
// propagated, because the movement itself is already durable.
func (h *ApplyMovementHandler) publish(ctx context.Context, movement *domain.StockMovement) {
	if h.publisher == nil {
		return
	}
	event := kafka.StockMovementAppliedEvent{
		ProductID: movement.ProductID,
		Direction: movement.Direction,
		Quantity:  movement.Quantity,
		OldStock:  movement.OldStock,
		NewStock:  movement.NewStock,
		Remark:    movement.Remark,
		Actor:     movement.Actor,
	}
	if err := h.publisher.PublishStockMovementApplied(ctx, event); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("product_id", movement.ProductID).
			Msg("Failed to publish stock movement event")
	}
}
