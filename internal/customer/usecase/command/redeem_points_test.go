package command_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aungmyo/ims-backend/internal/customer/domain"
	"github.com/aungmyo/ims-backend/internal/customer/usecase/command"
	"github.com/aungmyo/ims-backend/internal/memstore"
)

func seedCustomer(t *testing.T, store *memstore.Store, points int) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{Name: "Alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, store.Customers().Create(context.Background(), customer))
	if points > 0 {
		require.NoError(t, store.Customers().AddPoints(context.Background(), customer.ID, points))
	}
	return customer
}

func TestRedeemPoints(t *testing.T) {
	store := memstore.New()
	handler := command.NewRedeemPointsHandler(store, store.Customers())
	ctx := context.Background()
	customer := seedCustomer(t, store, 10)

	updated, err := handler.Handle(ctx, command.RedeemPointsCommand{CustomerID: customer.ID, Points: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.LoyaltyPoints)

	stored, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.LoyaltyPoints)
}

func TestRedeemPointsInsufficientBalance(t *testing.T) {
	store := memstore.New()
	handler := command.NewRedeemPointsHandler(store, store.Customers())
	ctx := context.Background()
	customer := seedCustomer(t, store, 3)

	_, err := handler.Handle(ctx, command.RedeemPointsCommand{CustomerID: customer.ID, Points: 5})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)

	stored, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.LoyaltyPoints)
}

func TestRedeemPointsValidation(t *testing.T) {
	store := memstore.New()
	handler := command.NewRedeemPointsHandler(store, store.Customers())
	customer := seedCustomer(t, store, 10)

	_, err := handler.Handle(context.Background(), command.RedeemPointsCommand{CustomerID: customer.ID, Points: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPointsAmount)

	_, err = handler.Handle(context.Background(), command.RedeemPointsCommand{CustomerID: 404, Points: 5})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// Two concurrent redemptions cannot both spend the same points.
func TestRedeemPointsConcurrent(t *testing.T) {
	store := memstore.New()
	handler := command.NewRedeemPointsHandler(store, store.Customers())
	ctx := context.Background()
	customer := seedCustomer(t, store, 10)

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(ctx, command.RedeemPointsCommand{CustomerID: customer.ID, Points: 6})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.LoyaltyPoints)
}
