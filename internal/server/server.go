// Package server assembles the HTTP surface: routing, middleware, health and
// observability endpoints.
package server

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	cataloghttp "github.com/aungmyo/ims-backend/internal/catalog/delivery/http"
	customerhttp "github.com/aungmyo/ims-backend/internal/customer/delivery/http"
	ledgerhttp "github.com/aungmyo/ims-backend/internal/ledger/delivery/http"
	purchasinghttp "github.com/aungmyo/ims-backend/internal/purchasing/delivery/http"
	reportinghttp "github.com/aungmyo/ims-backend/internal/reporting/delivery/http"
	saleshttp "github.com/aungmyo/ims-backend/internal/sales/delivery/http"
	"github.com/aungmyo/ims-backend/pkg/ratelimit"
)

// Handlers bundles every module's HTTP handler for route registration
type Handlers struct {
	Catalog    *cataloghttp.CatalogHandler
	Ledger     *ledgerhttp.LedgerHandler
	Sales      *saleshttp.SalesHandler
	Customer   *customerhttp.CustomerHandler
	Purchasing *purchasinghttp.PurchasingHandler
	Reporting  *reportinghttp.ReportingHandler
}

// NewRouter builds the service router. The rate limiter is optional and
// skipped when Redis is not configured.
func NewRouter(handlers Handlers, db *sql.DB, limiter *ratelimit.Limiter) http.Handler {
	router := mux.NewRouter()

	handlers.Catalog.RegisterRoutes(router)
	handlers.Ledger.RegisterRoutes(router)
	handlers.Sales.RegisterRoutes(router)
	handlers.Customer.RegisterRoutes(router)
	handlers.Purchasing.RegisterRoutes(router)
	handlers.Reporting.RegisterRoutes(router)

	registerHealthCheck(router, db)
	router.Handle("/metrics", promhttp.Handler())
	cataloghttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	var handler http.Handler = router
	if limiter != nil {
		handler = limiter.Middleware(handler)
	}
	handler = Auth(handler)
	handler = Logging(handler)
	handler = Tracing(handler)
	handler = RequestID(handler)
	handler = Recovery(handler)
	return handler
}

// registerHealthCheck registers the health check endpoint
func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "Database unavailable",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Service is healthy",
		})
	}).Methods("GET")
}
