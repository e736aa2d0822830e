package command_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/memstore"
	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
	"github.com/aungmyo/ims-backend/internal/purchasing/usecase/command"
)

type purchasingFixture struct {
	store   *memstore.Store
	create  *command.CreateOrderHandler
	receive *command.ReceiveOrderHandler
	cancel  *command.CancelOrderHandler
}

func newPurchasingFixture(t *testing.T) *purchasingFixture {
	t.Helper()
	store := memstore.New()
	ledger := ledgercommand.NewApplyMovementHandler(store, store.Products(), store.Movements(), nil)
	return &purchasingFixture{
		store:   store,
		create:  command.NewCreateOrderHandler(store, store.Orders(), store.Suppliers(), store.Products()),
		receive: command.NewReceiveOrderHandler(store, store.Orders(), ledger, nil),
		cancel:  command.NewCancelOrderHandler(store, store.Orders()),
	}
}

func (f *purchasingFixture) seedSupplier(t *testing.T) *domain.Supplier {
	t.Helper()
	supplier := &domain.Supplier{Name: "Acme Co", Email: "orders@acme.test", IsActive: true}
	require.NoError(t, f.store.Suppliers().Create(context.Background(), supplier))
	return supplier
}

func (f *purchasingFixture) seedProduct(t *testing.T, code string, stock int) *catalogdomain.Product {
	t.Helper()
	product := &catalogdomain.Product{Code: code, Name: "Product " + code, Price: 10, Stock: stock, IsActive: true}
	require.NoError(t, f.store.Products().Create(context.Background(), product))
	return product
}

func (f *purchasingFixture) seedOrder(t *testing.T, productID uint, quantity int) *domain.PurchaseOrder {
	t.Helper()
	supplier := f.seedSupplier(t)
	order, err := f.create.Handle(context.Background(), command.CreateOrderCommand{
		SupplierID: supplier.ID,
		Lines:      []command.OrderLine{{ProductID: productID, Quantity: quantity, UnitCost: 4}},
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	f := newPurchasingFixture(t)
	supplier := f.seedSupplier(t)
	product := f.seedProduct(t, "A1", 0)

	order, err := f.create.Handle(context.Background(), command.CreateOrderCommand{
		SupplierID: supplier.ID,
		Lines: []command.OrderLine{
			{ProductID: product.ID, Quantity: 10, UnitCost: 4},
			{ProductID: product.ID, Quantity: 5, UnitCost: 6},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 70.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 40.0, order.Items[0].TotalCost)

	today := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("PO-%s-001", today), order.Number)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newPurchasingFixture(t)
	supplier := f.seedSupplier(t)
	product := f.seedProduct(t, "A1", 0)

	_, err := f.create.Handle(context.Background(), command.CreateOrderCommand{SupplierID: supplier.ID})
	assert.Error(t, err)

	_, err = f.create.Handle(context.Background(), command.CreateOrderCommand{
		SupplierID: supplier.ID,
		Lines:      []command.OrderLine{{ProductID: product.ID, Quantity: 0, UnitCost: 4}},
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidQuantity)

	_, err = f.create.Handle(context.Background(), command.CreateOrderCommand{
		SupplierID: 404,
		Lines:      []command.OrderLine{{ProductID: product.ID, Quantity: 1, UnitCost: 4}},
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestReceiveOrderPartial(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 10)

	result, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 8}},
		Actor:   "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, result.Status)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 8, result.Items[0].QuantityReceived)
	assert.Equal(t, 2, result.Items[0].QuantityRemaining)

	stored, err := f.store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Stock)

	history, err := f.store.Movements().FindByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, ledgerdomain.DirectionIn, history[0].Direction)
	assert.Contains(t, history[0].Remark, order.Number)
}

func TestReceiveOrderCompletes(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 10)

	_, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 8}},
	})
	require.NoError(t, err)

	result, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, result.Status)

	stored, err := f.store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
}

func TestReceiveOrderOverReceipt(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 10)

	_, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 8}},
	})
	require.NoError(t, err)

	// 8 received, 2 remaining: 5 more must be rejected without side effects.
	_, err = f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 5}},
	})
	require.ErrorIs(t, err, domain.ErrOverReceipt)

	stored, err := f.store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Stock)

	reloaded, err := f.store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.Items[0].QuantityReceived)
	assert.Equal(t, domain.StatusPartial, reloaded.Status)
}

func TestReceiveOrderDuplicateLinesOverReceipt(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 10)

	// Two lines for the same item, each within the remaining quantity but
	// 16 in total against 10 ordered.
	_, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines: []command.ReceiptLine{
			{ItemID: order.Items[0].ID, Quantity: 8},
			{ItemID: order.Items[0].ID, Quantity: 8},
		},
	})
	require.ErrorIs(t, err, domain.ErrOverReceipt)

	stored, err := f.store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)

	reloaded, err := f.store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Items[0].QuantityReceived)
	assert.Equal(t, domain.StatusPending, reloaded.Status)

	// A receipt splitting the ordered quantity across duplicate lines is
	// still fine.
	result, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines: []command.ReceiptLine{
			{ItemID: order.Items[0].ID, Quantity: 6},
			{ItemID: order.Items[0].ID, Quantity: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, result.Status)

	stored, err = f.store.Products().FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
}

func TestReceiveOrderUnknownOrderAndItem(t *testing.T) {
	f := newPurchasingFixture(t)
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 10)

	_, err := f.receive.Handle(context.Background(), command.ReceiveOrderCommand{
		OrderID: 404,
		Lines:   []command.ReceiptLine{{ItemID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = f.receive.Handle(context.Background(), command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: 404, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)
}

func TestReceiveOrderClosed(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 5)

	_, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 5}},
	})
	require.NoError(t, err)

	_, err = f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestCancelOrder(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 5)

	require.NoError(t, f.cancel.Handle(ctx, command.CancelOrderCommand{OrderID: order.ID}))

	reloaded, err := f.store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, reloaded.Status)
}

func TestCancelOrderAfterReceiptRefused(t *testing.T) {
	f := newPurchasingFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "A1", 0)
	order := f.seedOrder(t, product.ID, 5)

	_, err := f.receive.Handle(ctx, command.ReceiveOrderCommand{
		OrderID: order.ID,
		Lines:   []command.ReceiptLine{{ItemID: order.Items[0].ID, Quantity: 2}},
	})
	require.NoError(t, err)

	err = f.cancel.Handle(ctx, command.CancelOrderCommand{OrderID: order.ID})
	assert.ErrorIs(t, err, domain.ErrNotCancellable)
}
