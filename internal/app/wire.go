//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	cataloghttp "github.com/aungmyo/ims-backend/internal/catalog/delivery/http"
	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	catalogrepo "github.com/aungmyo/ims-backend/internal/catalog/repository"
	catalogcommand "github.com/aungmyo/ims-backend/internal/catalog/usecase/command"
	catalogquery "github.com/aungmyo/ims-backend/internal/catalog/usecase/query"
	customerhttp "github.com/aungmyo/ims-backend/internal/customer/delivery/http"
	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	customerrepo "github.com/aungmyo/ims-backend/internal/customer/repository"
	customercommand "github.com/aungmyo/ims-backend/internal/customer/usecase/command"
	customerquery "github.com/aungmyo/ims-backend/internal/customer/usecase/query"
	ledgerhttp "github.com/aungmyo/ims-backend/internal/ledger/delivery/http"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgerrepo "github.com/aungmyo/ims-backend/internal/ledger/repository"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	ledgerquery "github.com/aungmyo/ims-backend/internal/ledger/usecase/query"
	purchasinghttp "github.com/aungmyo/ims-backend/internal/purchasing/delivery/http"
	purchasingdomain "github.com/aungmyo/ims-backend/internal/purchasing/domain"
	purchasingrepo "github.com/aungmyo/ims-backend/internal/purchasing/repository"
	purchasingcommand "github.com/aungmyo/ims-backend/internal/purchasing/usecase/command"
	purchasingquery "github.com/aungmyo/ims-backend/internal/purchasing/usecase/query"
	reportinghttp "github.com/aungmyo/ims-backend/internal/reporting/delivery/http"
	reportingquery "github.com/aungmyo/ims-backend/internal/reporting/usecase/query"
	saleshttp "github.com/aungmyo/ims-backend/internal/sales/delivery/http"
	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
	salesrepo "github.com/aungmyo/ims-backend/internal/sales/repository"
	salescommand "github.com/aungmyo/ims-backend/internal/sales/usecase/command"
	salesquery "github.com/aungmyo/ims-backend/internal/sales/usecase/query"
	"github.com/aungmyo/ims-backend/internal/server"
	"github.com/aungmyo/ims-backend/kafka"
	"github.com/aungmyo/ims-backend/pkg/database"
)

// Repository providers

func ProvideTxManager(db *gorm.DB) database.TxManager {
	return database.NewGormTxManager(db)
}

func ProvideProductRepository(db *gorm.DB) catalogdomain.ProductRepository {
	return catalogrepo.NewTracingProductRepository(db)
}

func ProvideCategoryRepository(db *gorm.DB) catalogdomain.CategoryRepository {
	return catalogrepo.NewGormCategoryRepository(db)
}

func ProvideMovementRepository(db *gorm.DB) ledgerdomain.MovementRepository {
	return ledgerrepo.NewGormMovementRepository(db)
}

func ProvideCustomerRepository(db *gorm.DB) customerdomain.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(db)
}

func ProvideInvoiceRepository(db *gorm.DB) salesdomain.InvoiceRepository {
	return salesrepo.NewGormInvoiceRepository(db)
}

func ProvideOrderRepository(db *gorm.DB) purchasingdomain.OrderRepository {
	return purchasingrepo.NewGormOrderRepository(db)
}

func ProvideSupplierRepository(db *gorm.DB) purchasingdomain.SupplierRepository {
	return purchasingrepo.NewGormSupplierRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideTxManager,
	ProvideProductRepository,
	ProvideCategoryRepository,
	ProvideMovementRepository,
	ProvideCustomerRepository,
	ProvideInvoiceRepository,
	ProvideOrderRepository,
	ProvideSupplierRepository,
)

var HandlerSet = wire.NewSet(
	// Catalog
	catalogcommand.NewCreateProductHandler,
	catalogcommand.NewUpdateProductHandler,
	catalogcommand.NewDeleteProductHandler,
	catalogcommand.NewCreateCategoryHandler,
	catalogcommand.NewUpdateCategoryHandler,
	catalogcommand.NewDeleteCategoryHandler,
	catalogquery.NewGetProductHandler,
	catalogquery.NewLookupCodeHandler,
	catalogquery.NewListProductsHandler,
	catalogquery.NewListCategoriesHandler,
	cataloghttp.NewCatalogHandler,

	// Ledger
	ledgercommand.NewApplyMovementHandler,
	ledgerquery.NewListMovementsHandler,
	ledgerquery.NewGetMovementStatsHandler,
	ledgerhttp.NewLedgerHandler,

	// Sales
	salescommand.NewCreateSaleHandler,
	salescommand.NewCancelSaleHandler,
	salesquery.NewGetInvoiceHandler,
	salesquery.NewListInvoicesHandler,
	saleshttp.NewSalesHandler,

	// Customers
	customercommand.NewCreateCustomerHandler,
	customercommand.NewUpdateCustomerHandler,
	customercommand.NewDeleteCustomerHandler,
	customercommand.NewRedeemPointsHandler,
	customerquery.NewGetCustomerHandler,
	customerquery.NewListCustomersHandler,
	customerhttp.NewCustomerHandler,

	// Purchasing
	purchasingcommand.NewCreateOrderHandler,
	purchasingcommand.NewReceiveOrderHandler,
	purchasingcommand.NewCancelOrderHandler,
	purchasingcommand.NewCreateSupplierHandler,
	purchasingcommand.NewUpdateSupplierHandler,
	purchasingquery.NewGetOrderHandler,
	purchasingquery.NewListOrdersHandler,
	purchasingquery.NewListSuppliersHandler,
	purchasinghttp.NewPurchasingHandler,

	// Reporting
	reportingquery.NewGetDashboardHandler,
	reportingquery.NewGetLowStockHandler,
	reportingquery.NewGetSalesSummaryHandler,
	reportingquery.NewGetTopProductsHandler,
	reportingquery.NewGetCategoryValuesHandler,
	reportinghttp.NewReportingHandler,

	wire.Struct(new(server.Handlers), "*"),
)

// InitializeHandlers wires every module's HTTP handler
func InitializeHandlers(db *gorm.DB, publisher *kafka.Publisher, accrualRate int) (server.Handlers, error) {
	wire.Build(RepositorySet, HandlerSet)
	return server.Handlers{}, nil
}
