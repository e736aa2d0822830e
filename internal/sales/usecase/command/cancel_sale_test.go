package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/memstore"
	"github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/internal/sales/usecase/command"
)

func newCancelHandler(t *testing.T, store *memstore.Store) *command.CancelSaleHandler {
	t.Helper()
	ledger := ledgercommand.NewApplyMovementHandler(store, store.Products(), store.Movements(), nil)
	return command.NewCancelSaleHandler(store, store.Invoices(), store.Customers(), ledger, 100)
}

func TestCancelSaleRestoresStock(t *testing.T) {
	createHandler, store := newSaleHandler(t, 100)
	cancelHandler := newCancelHandler(t, store)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 50, 5)

	invoice, err := createHandler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	cancelled, err := cancelHandler.Handle(ctx, command.CancelSaleCommand{InvoiceID: invoice.ID, Actor: "bob"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)

	// The reversal is a new inbound entry, not an erased history.
	history, err := store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ledgerdomain.DirectionIn, history[0].Direction)
	assert.Contains(t, history[0].Remark, "cancelled")
}

func TestCancelSaleClawsBackPoints(t *testing.T) {
	createHandler, store := newSaleHandler(t, 100)
	cancelHandler := newCancelHandler(t, store)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 150, 10)

	customer := &customerdomain.Customer{Name: "Alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, store.Customers().Create(ctx, customer))

	invoice, err := createHandler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		CustomerID:   &customer.ID,
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	stored, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.LoyaltyPoints)

	_, err = cancelHandler.Handle(ctx, command.CancelSaleCommand{InvoiceID: invoice.ID})
	require.NoError(t, err)

	stored, err = store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LoyaltyPoints)
}

func TestCancelSaleClawBackClampsAtZero(t *testing.T) {
	createHandler, store := newSaleHandler(t, 100)
	cancelHandler := newCancelHandler(t, store)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 150, 10)

	customer := &customerdomain.Customer{Name: "Alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, store.Customers().Create(ctx, customer))

	invoice, err := createHandler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		CustomerID:   &customer.ID,
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Customer spends the accrued points before the cancellation lands.
	require.NoError(t, store.Customers().AddPoints(ctx, customer.ID, -3))

	_, err = cancelHandler.Handle(ctx, command.CancelSaleCommand{InvoiceID: invoice.ID})
	require.NoError(t, err)

	stored, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LoyaltyPoints)
}

func TestCancelSaleTwice(t *testing.T) {
	createHandler, store := newSaleHandler(t, 100)
	cancelHandler := newCancelHandler(t, store)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 50, 5)

	invoice, err := createHandler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = cancelHandler.Handle(ctx, command.CancelSaleCommand{InvoiceID: invoice.ID})
	require.NoError(t, err)

	_, err = cancelHandler.Handle(ctx, command.CancelSaleCommand{InvoiceID: invoice.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	// Stock restored exactly once.
	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)
}

func TestCancelSaleUnknownInvoice(t *testing.T) {
	_, store := newSaleHandler(t, 100)
	cancelHandler := newCancelHandler(t, store)

	_, err := cancelHandler.Handle(context.Background(), command.CancelSaleCommand{InvoiceID: 404})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}
