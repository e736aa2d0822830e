package command_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/memstore"
	"github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/internal/sales/usecase/command"
)

func newSaleHandler(t *testing.T, accrualRate int) (*command.CreateSaleHandler, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	ledger := ledgercommand.NewApplyMovementHandler(store, store.Products(), store.Movements(), nil)
	handler := command.NewCreateSaleHandler(store, store.Products(), store.Invoices(), store.Customers(), ledger, nil, accrualRate)
	return handler, store
}

func seedProduct(t *testing.T, store *memstore.Store, code string, price float64, stock int) *catalogdomain.Product {
	t.Helper()
	product := &catalogdomain.Product{Code: code, Name: "Product " + code, Price: price, Stock: stock, IsActive: true}
	require.NoError(t, store.Products().Create(context.Background(), product))
	return product
}

func TestCreateSale(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 50, 5)

	invoice, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 2}},
		Actor:        "bob",
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, invoice.Total)
	assert.Equal(t, domain.StatusCompleted, invoice.Status)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, 50.0, invoice.Items[0].UnitPrice)
	assert.Equal(t, 100.0, invoice.Items[0].Amount)

	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)

	history, err := store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, ledgerdomain.DirectionOut, history[0].Direction)
	assert.Contains(t, history[0].Remark, invoice.Number)
}

func TestCreateSaleInvoiceNumberFormat(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 10, 100)

	first, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	today := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("INV-%s-001", today), first.Number)
	assert.Equal(t, fmt.Sprintf("INV-%s-002", today), second.Number)
}

func TestCreateSaleEmptyCart(t *testing.T) {
	handler, _ := newSaleHandler(t, 100)

	_, err := handler.Handle(context.Background(), command.CreateSaleCommand{CustomerName: "Alice"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreateSaleInsufficientStockRollsBack(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	ctx := context.Background()
	ample := seedProduct(t, store, "A1", 10, 100)
	short := seedProduct(t, store, "B2", 20, 1)

	_, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines: []command.SaleLine{
			{ProductID: ample.ID, Quantity: 5},
			{ProductID: short.ID, Quantity: 3},
		},
	})
	require.ErrorIs(t, err, ledgerdomain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "B2")

	// Nothing committed: no invoice, no movements, stock untouched.
	invoices, err := store.Invoices().FindAll(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	movements, err := store.Movements().FindAll(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movements)

	storedAmple, err := store.Products().FindByID(ctx, ample.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, storedAmple.Stock)
}

func TestCreateSaleInvalidQuantity(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	product := seedProduct(t, store, "A1", 10, 100)

	_, err := handler.Handle(context.Background(), command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidQuantity)
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	handler, _ := newSaleHandler(t, 100)

	_, err := handler.Handle(context.Background(), command.CreateSaleCommand{
		CustomerName: "Alice",
		Lines:        []command.SaleLine{{ProductID: 404, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrProductNotFound)
}

func TestCreateSaleLoyaltyAccrual(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 120, 10)

	customer := &customerdomain.Customer{Name: "Alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, store.Customers().Create(ctx, customer))

	// 3 * 120 = 360 -> floor(360/100) = 3 points
	invoice, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Alice",
		CustomerID:   &customer.ID,
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 360.0, invoice.Total)

	stored, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.LoyaltyPoints)
}

func TestCreateSaleWalkInAccruesNothing(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 500, 10)

	invoice, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "",
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Nil(t, invoice.CustomerID)

	history, err := store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Contains(t, history[0].Remark, "walk-in")
}

func TestCreateSaleUnknownCustomer(t *testing.T) {
	handler, store := newSaleHandler(t, 100)
	ctx := context.Background()
	product := seedProduct(t, store, "A1", 10, 10)

	missing := uint(404)
	_, err := handler.Handle(ctx, command.CreateSaleCommand{
		CustomerName: "Ghost",
		CustomerID:   &missing,
		Lines:        []command.SaleLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, customerdomain.ErrCustomerNotFound)

	stored, err := store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
}
