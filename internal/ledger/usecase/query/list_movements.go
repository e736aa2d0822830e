package query

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/ledger/domain"
)

// ListMovementsQuery represents the query to list stock movements
type ListMovementsQuery struct {
	ProductID uint
	Direction string
	Limit     int
	Offset    int
}

// ListMovementsHandler handles movement history queries
type ListMovementsHandler struct {
	movements domain.MovementRepository
}

// NewListMovementsHandler creates a new list movements handler
func NewListMovementsHandler(movements domain.MovementRepository) *ListMovementsHandler {
	return &ListMovementsHandler{movements: movements}
}

// Handle executes the list movements query
func (h *ListMovementsHandler) Handle(ctx context.Context, q ListMovementsQuery) ([]domain.StockMovement, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	var (
		movements []domain.StockMovement
		err       error
	)
	switch {
	case q.ProductID != 0:
		movements, err = h.movements.FindByProduct(ctx, q.ProductID, q.Limit, q.Offset)
	case q.Direction != "":
		if q.Direction != domain.DirectionIn && q.Direction != domain.DirectionOut {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, q.Direction)
		}
		movements, err = h.movements.FindByDirection(ctx, q.Direction, q.Limit, q.Offset)
	default:
		movements, err = h.movements.FindAll(ctx, q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return movements, nil
}

// GetMovementStatsQuery represents the query for movement counters
type GetMovementStatsQuery struct{}

// MovementStats holds in/out movement counters
type MovementStats struct {
	TotalIn  int64 `json:"total_in"`
	TotalOut int64 `json:"total_out"`
}

// GetMovementStatsHandler handles movement stats query
type GetMovementStatsHandler struct {
	movements domain.MovementRepository
}

// NewGetMovementStatsHandler creates a new movement stats handler
func NewGetMovementStatsHandler(movements domain.MovementRepository) *GetMovementStatsHandler {
	return &GetMovementStatsHandler{movements: movements}
}

// Handle executes the movement stats query
func (h *GetMovementStatsHandler) Handle(ctx context.Context, _ GetMovementStatsQuery) (*MovementStats, error) {
	totalIn, err := h.movements.CountByDirection(ctx, domain.DirectionIn)
	if err != nil {
		return nil, fmt.Errorf("failed to count inbound movements: %w", err)
	}
	totalOut, err := h.movements.CountByDirection(ctx, domain.DirectionOut)
	if err != nil {
		return nil, fmt.Errorf("failed to count outbound movements: %w", err)
	}

	return &MovementStats{TotalIn: totalIn, TotalOut: totalOut}, nil
}
