package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aungmyo/ims-backend/internal/reporting/usecase/query"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// ReportingHandler handles HTTP requests for reports
type ReportingHandler struct {
	dashboard      *query.GetDashboardHandler
	lowStock       *query.GetLowStockHandler
	salesSummary   *query.GetSalesSummaryHandler
	topProducts    *query.GetTopProductsHandler
	categoryValues *query.GetCategoryValuesHandler

	lowStockGauge prometheus.Gauge
}

// NewReportingHandler creates a new reporting handler
func NewReportingHandler(
	dashboard *query.GetDashboardHandler,
	lowStock *query.GetLowStockHandler,
	salesSummary *query.GetSalesSummaryHandler,
	topProducts *query.GetTopProductsHandler,
	categoryValues *query.GetCategoryValuesHandler,
) *ReportingHandler {
	lowStockGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "reporting_low_stock_products",
		Help: "Number of products at or below their minimum stock, as of the last report",
	})
	prometheus.MustRegister(lowStockGauge)

	return &ReportingHandler{
		dashboard:      dashboard,
		lowStock:       lowStock,
		salesSummary:   salesSummary,
		topProducts:    topProducts,
		categoryValues: categoryValues,
		lowStockGauge:  lowStockGauge,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all reporting routes
func (h *ReportingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/dashboard", h.GetDashboard).Methods("GET")
	router.HandleFunc("/api/reports/low-stock", h.GetLowStock).Methods("GET")
	router.HandleFunc("/api/reports/sales-summary", h.GetSalesSummary).Methods("GET")
	router.HandleFunc("/api/reports/top-products", h.GetTopProducts).Methods("GET")
	router.HandleFunc("/api/reports/category-values", h.GetCategoryValues).Methods("GET")
}

// GetDashboard handles GET /api/reports/dashboard
func (h *ReportingHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.Handle(r.Context())
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to build dashboard")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build dashboard"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: dashboard})
}

// GetLowStock handles GET /api/reports/low-stock
func (h *ReportingHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.lowStock.Handle(r.Context())
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to build low stock report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build low stock report"})
		return
	}
	h.lowStockGauge.Set(float64(len(items)))
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// GetSalesSummary handles GET /api/reports/sales-summary
func (h *ReportingHandler) GetSalesSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := reportWindow(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	summary, err := h.salesSummary.Handle(r.Context(), query.SalesSummaryQuery{From: from, To: to})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to build sales summary")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build sales summary"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: summary})
}

// GetTopProducts handles GET /api/reports/top-products
func (h *ReportingHandler) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	from, to, err := reportWindow(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.topProducts.Handle(r.Context(), query.TopProductsQuery{From: from, To: to, Limit: limit})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to build top products report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build top products report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// GetCategoryValues handles GET /api/reports/category-values
func (h *ReportingHandler) GetCategoryValues(w http.ResponseWriter, r *http.Request) {
	values, err := h.categoryValues.Handle(r.Context())
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to build category values report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build category values report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: values})
}

// reportWindow parses from/to query params, defaulting to the last 30 days
func reportWindow(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Inclusive end date
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
