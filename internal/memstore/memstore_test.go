package memstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aungmyo/ims-backend/internal/memstore"
	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
)

func TestInvoiceListsDoNotAliasStore(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	customerID := uint(1)
	invoice := &salesdomain.Invoice{
		Number:       "INV-20260831-001",
		CustomerID:   &customerID,
		CustomerName: "Alice",
		Status:       salesdomain.StatusCompleted,
		Items:        []salesdomain.InvoiceItem{{ProductID: 1, Quantity: 2, UnitPrice: 50, Amount: 100}},
	}
	require.NoError(t, store.Invoices().Create(ctx, invoice))

	listed, err := store.Invoices().FindAll(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Items, 1)

	listed[0].Items[0].Quantity = 999

	reloaded, err := store.Invoices().FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)

	byCustomer, err := store.Invoices().FindByCustomer(ctx, customerID, 10, 0)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	byCustomer[0].Items[0].Quantity = 777

	reloaded, err = store.Invoices().FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
}
