package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/memstore"
	"github.com/aungmyo/ims-backend/internal/reporting/usecase/query"
	salescommand "github.com/aungmyo/ims-backend/internal/sales/usecase/command"
)

func seedProduct(t *testing.T, store *memstore.Store, p catalogdomain.Product) *catalogdomain.Product {
	t.Helper()
	p.IsActive = true
	require.NoError(t, store.Products().Create(context.Background(), &p))
	return &p
}

// sell records a completed cash sale so the invoice aggregates have data.
func sell(t *testing.T, store *memstore.Store, productID uint, quantity int) {
	t.Helper()
	ledger := ledgercommand.NewApplyMovementHandler(store, store.Products(), store.Movements(), nil)
	sale := salescommand.NewCreateSaleHandler(
		store, store.Products(), store.Invoices(), store.Customers(), ledger, nil, 100)
	_, err := sale.Handle(context.Background(), salescommand.CreateSaleCommand{
		CustomerName: "walk-in",
		Lines:        []salescommand.SaleLine{{ProductID: productID, Quantity: quantity}},
	})
	require.NoError(t, err)
}

func TestDashboard(t *testing.T) {
	store := memstore.New()
	seedProduct(t, store, catalogdomain.Product{Code: "A1", Name: "Widget", Price: 10, Cost: 6, Stock: 20, MinStock: 5})
	seedProduct(t, store, catalogdomain.Product{Code: "B2", Name: "Gadget", Price: 25, Cost: 15, Stock: 3, MinStock: 5})
	seedProduct(t, store, catalogdomain.Product{Code: "C3", Name: "Gizmo", Price: 8, Cost: 4, Stock: 0, MinStock: 2})

	sell(t, store, 1, 2)

	h := query.NewGetDashboardHandler(store.Products(), store.Invoices())
	dashboard, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), dashboard.ProductCount)
	// 18*10 + 3*25 + 0*8, stock reflects the sale above.
	assert.Equal(t, 255.0, dashboard.StockValue)
	assert.Equal(t, 1, dashboard.LowStockCount)
	assert.Equal(t, 1, dashboard.OutOfStockCount)
	assert.Equal(t, int64(1), dashboard.TodaySales)
	assert.Equal(t, 20.0, dashboard.TodayRevenue)
}

func TestLowStockReport(t *testing.T) {
	store := memstore.New()
	seedProduct(t, store, catalogdomain.Product{Code: "A1", Name: "Widget", Price: 10, Stock: 20, MinStock: 5})
	seedProduct(t, store, catalogdomain.Product{Code: "B2", Name: "Gadget", Price: 25, Stock: 3, MinStock: 5})

	h := query.NewGetLowStockHandler(store.Products())
	items, err := h.Handle(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "B2", items[0].Code)
	assert.Equal(t, 3, items[0].Stock)
	assert.Equal(t, 2, items[0].Shortfall)
}

func TestSalesSummary(t *testing.T) {
	store := memstore.New()
	seedProduct(t, store, catalogdomain.Product{Code: "A1", Name: "Widget", Price: 10, Stock: 100})
	sell(t, store, 1, 3)
	sell(t, store, 1, 5)

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	h := query.NewGetSalesSummaryHandler(store.Invoices())
	summary, err := h.Handle(context.Background(), query.SalesSummaryQuery{From: from, To: from.AddDate(0, 0, 1)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.SaleCount)
	assert.Equal(t, 80.0, summary.Revenue)
	assert.Equal(t, 40.0, summary.AverageValue)
}

func TestSalesSummaryEmptyWindow(t *testing.T) {
	store := memstore.New()
	h := query.NewGetSalesSummaryHandler(store.Invoices())

	now := time.Now()
	_, err := h.Handle(context.Background(), query.SalesSummaryQuery{From: now, To: now})
	assert.Error(t, err)
}

func TestTopProducts(t *testing.T) {
	store := memstore.New()
	seedProduct(t, store, catalogdomain.Product{Code: "A1", Name: "Widget", Price: 10, Stock: 100})
	seedProduct(t, store, catalogdomain.Product{Code: "B2", Name: "Gadget", Price: 25, Stock: 100})

	sell(t, store, 1, 2)
	sell(t, store, 2, 7)
	sell(t, store, 1, 1)

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	h := query.NewGetTopProductsHandler(store.Invoices())
	ranked, err := h.Handle(context.Background(), query.TopProductsQuery{From: from, To: from.AddDate(0, 0, 1)})
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Gadget", ranked[0].ProductName)
	assert.Equal(t, int64(7), ranked[0].QuantitySold)
	assert.Equal(t, 175.0, ranked[0].Revenue)
	assert.Equal(t, int64(3), ranked[1].QuantitySold)
}

func TestCategoryValues(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	tools := &catalogdomain.Category{Name: "Tools"}
	parts := &catalogdomain.Category{Name: "Parts"}
	require.NoError(t, store.Categories().Create(ctx, tools))
	require.NoError(t, store.Categories().Create(ctx, parts))

	seedProduct(t, store, catalogdomain.Product{Code: "A1", Name: "Hammer", Price: 10, Stock: 4, CategoryID: tools.ID})
	seedProduct(t, store, catalogdomain.Product{Code: "A2", Name: "Wrench", Price: 20, Stock: 2, CategoryID: tools.ID})
	seedProduct(t, store, catalogdomain.Product{Code: "B1", Name: "Bolt", Price: 1, Stock: 50, CategoryID: parts.ID})

	h := query.NewGetCategoryValuesHandler(store.Products(), store.Categories())
	values, err := h.Handle(ctx)
	require.NoError(t, err)

	require.Len(t, values, 2)
	assert.Equal(t, "Tools", values[0].CategoryName)
	assert.Equal(t, 2, values[0].ProductCount)
	assert.Equal(t, 6, values[0].TotalStock)
	assert.Equal(t, 80.0, values[0].StockValue)
	assert.Equal(t, 50.0, values[1].StockValue)
}
