package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	"github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/ledger/usecase/query"
	"github.com/aungmyo/ims-backend/internal/memstore"
)

func seedHistory(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	product := &catalogdomain.Product{Code: "A1", Name: "Widget", Price: 10, Stock: 50, IsActive: true}
	require.NoError(t, store.Products().Create(context.Background(), product))

	apply := command.NewApplyMovementHandler(store, store.Products(), store.Movements(), nil)
	for _, m := range []struct {
		direction string
		quantity  int
	}{
		{domain.DirectionIn, 10},
		{domain.DirectionOut, 4},
		{domain.DirectionOut, 2},
	} {
		_, err := apply.Handle(context.Background(), command.ApplyMovementCommand{
			ProductID: product.ID,
			Direction: m.direction,
			Quantity:  m.quantity,
		})
		require.NoError(t, err)
	}
	return store
}

func TestListMovementsByDirection(t *testing.T) {
	store := seedHistory(t)
	h := query.NewListMovementsHandler(store.Movements())

	out, err := h.Handle(context.Background(), query.ListMovementsQuery{Direction: domain.DirectionOut})
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Newest first.
	assert.Equal(t, 2, out[0].Quantity)
	assert.Equal(t, 4, out[1].Quantity)

	in, err := h.Handle(context.Background(), query.ListMovementsQuery{Direction: domain.DirectionIn})
	require.NoError(t, err)
	require.Len(t, in, 1)
}

func TestListMovementsRejectsUnknownDirection(t *testing.T) {
	store := seedHistory(t)
	h := query.NewListMovementsHandler(store.Movements())

	_, err := h.Handle(context.Background(), query.ListMovementsQuery{Direction: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestMovementStats(t *testing.T) {
	store := seedHistory(t)
	h := query.NewGetMovementStatsHandler(store.Movements())

	stats, err := h.Handle(context.Background(), query.GetMovementStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalIn)
	assert.Equal(t, int64(2), stats.TotalOut)
}
