package command_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	"github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/memstore"
)

func newHandler(t *testing.T) (*command.ApplyMovementHandler, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	handler := command.NewApplyMovementHandler(store, store.Products(), store.Movements(), nil)
	return handler, store
}

func seedProduct(t *testing.T, store *memstore.Store, code string, stock int) *catalogdomain.Product {
	t.Helper()
	product := &catalogdomain.Product{Code: code, Name: "Product " + code, Price: 50, Stock: stock, IsActive: true}
	require.NoError(t, store.Products().Create(context.Background(), product))
	return product
}

func TestApplyMovementOut(t *testing.T) {
	handler, store := newHandler(t)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 10)

	movement, err := handler.Handle(ctx, command.ApplyMovementCommand{
		ProductID: product.ID,
		Direction: domain.DirectionOut,
		Quantity:  3,
		Remark:    "shrinkage",
		Actor:     "alice",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, movement.OldStock)
	assert.Equal(t, 7, movement.NewStock)
	assert.Equal(t, domain.DirectionOut, movement.Direction)

	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Stock)

	history, err := store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "shrinkage", history[0].Remark)
	assert.Equal(t, "alice", history[0].Actor)
}

func TestApplyMovementIn(t *testing.T) {
	handler, store := newHandler(t)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 0)

	movement, err := handler.Handle(ctx, command.ApplyMovementCommand{
		ProductID: product.ID,
		Direction: domain.DirectionIn,
		Quantity:  25,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, movement.NewStock)

	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Stock)
}

func TestApplyMovementInsufficientStock(t *testing.T) {
	handler, store := newHandler(t)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 2)

	_, err := handler.Handle(ctx, command.ApplyMovementCommand{
		ProductID: product.ID,
		Direction: domain.DirectionOut,
		Quantity:  5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Neither stock nor history moved.
	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Stock)

	history, err := store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestApplyMovementValidation(t *testing.T) {
	handler, store := newHandler(t)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 10)

	_, err := handler.Handle(ctx, command.ApplyMovementCommand{
		ProductID: product.ID,
		Direction: domain.DirectionOut,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = handler.Handle(ctx, command.ApplyMovementCommand{
		ProductID: product.ID,
		Direction: domain.DirectionOut,
		Quantity:  -4,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = handler.Handle(ctx, command.ApplyMovementCommand{
		ProductID: product.ID,
		Direction: "sideways",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestApplyMovementUnknownProduct(t *testing.T) {
	handler, _ := newHandler(t)

	_, err := handler.Handle(context.Background(), command.ApplyMovementCommand{
		ProductID: 999,
		Direction: domain.DirectionIn,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// With stock S and N concurrent out-movements of 1, exactly S succeed and the
// rest fail with insufficient stock; the ledger never goes negative.
func TestApplyMovementConcurrentOut(t *testing.T) {
	handler, store := newHandler(t)
	ctx := context.Background()

	const stock = 5
	const workers = 20
	product := seedProduct(t, store, "A1", stock)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(ctx, command.ApplyMovementCommand{
				ProductID: product.ID,
				Direction: domain.DirectionOut,
				Quantity:  1,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			rejected++
		}
	}
	assert.Equal(t, stock, succeeded)
	assert.Equal(t, workers-stock, rejected)

	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)

	history, err := store.Movements().FindByProduct(ctx, product.ID, workers, 0)
	require.NoError(t, err)
	assert.Len(t, history, stock)
}

// Applied movements chain: each entry's OldStock equals the previous entry's
// NewStock.
func TestApplyMovementHistoryChains(t *testing.T) {
	handler, store := newHandler(t)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 0)

	steps := []struct {
		direction string
		quantity  int
	}{
		{domain.DirectionIn, 10},
		{domain.DirectionOut, 4},
		{domain.DirectionIn, 2},
		{domain.DirectionOut, 8},
	}
	for _, step := range steps {
		_, err := handler.Handle(ctx, command.ApplyMovementCommand{
			ProductID: product.ID,
			Direction: step.direction,
			Quantity:  step.quantity,
		})
		require.NoError(t, err)
	}

	history, err := store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)

	// FindByProduct returns newest first.
	for i := 0; i < len(history)-1; i++ {
		assert.Equal(t, history[i+1].NewStock, history[i].OldStock)
	}
	assert.Equal(t, 0, history[0].NewStock)
}
