package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/internal/sales/usecase/command"
	"github.com/aungmyo/ims-backend/internal/sales/usecase/query"
	"github.com/aungmyo/ims-backend/pkg/auth"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// SalesHandler handles HTTP requests for sales
type SalesHandler struct {
	createSale *command.CreateSaleHandler
	cancelSale *command.CancelSaleHandler

	getInvoice   *query.GetInvoiceHandler
	listInvoices *query.ListInvoicesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	saleRevenue    prometheus.Counter
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(
	createSale *command.CreateSaleHandler,
	cancelSale *command.CancelSaleHandler,
	getInvoice *query.GetInvoiceHandler,
	listInvoices *query.ListInvoicesHandler,
) *SalesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_requests_total",
			Help: "Total number of requests to the sales service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_request_duration_seconds",
			Help:    "Duration of sales requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	saleRevenue := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_revenue_total",
			Help: "Cumulative revenue of completed sales",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(saleRevenue)

	return &SalesHandler{
		createSale:     createSale,
		cancelSale:     cancelSale,
		getInvoice:     getInvoice,
		listInvoices:   listInvoices,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		saleRevenue:    saleRevenue,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SalesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all sales routes
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.ListInvoices)).Methods("GET")
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.CreateSale)).Methods("POST")
	router.HandleFunc("/api/sales/{id}", h.metricsMiddleware("/api/sales/{id}", h.GetInvoice)).Methods("GET")
	router.HandleFunc("/api/sales/{id}/cancel", h.metricsMiddleware("/api/sales/{id}/cancel", h.CancelSale)).Methods("POST")
}

// CreateSale handles POST /api/sales
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName string `json:"customer_name"`
		CustomerID   *uint  `json:"customer_id"`
		Items        []struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.CreateSaleCommand{
		CustomerName: req.CustomerName,
		CustomerID:   req.CustomerID,
		Actor:        auth.ActorFromContext(r.Context()),
	}
	for _, item := range req.Items {
		cmd.Lines = append(cmd.Lines, command.SaleLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	invoice, err := h.createSale.Handle(r.Context(), cmd)
	if err != nil {
		h.respondSaleError(w, r, err)
		return
	}

	h.saleRevenue.Add(invoice.Total)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale completed successfully",
		Data:    invoice,
	})
}

// GetInvoice handles GET /api/sales/{id}
func (h *SalesHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid invoice ID"})
		return
	}

	invoice, err := h.getInvoice.Handle(r.Context(), query.GetInvoiceQuery{InvoiceID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Invoice not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: invoice})
}

// ListInvoices handles GET /api/sales
func (h *SalesHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	q := query.ListInvoicesQuery{}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	if customerID, err := strconv.ParseUint(r.URL.Query().Get("customer_id"), 10, 32); err == nil {
		q.CustomerID = uint(customerID)
	}
	if from, err := time.Parse("2006-01-02", r.URL.Query().Get("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse("2006-01-02", r.URL.Query().Get("to")); err == nil {
		q.To = &to
	}

	invoices, err := h.listInvoices.Handle(r.Context(), q)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list invoices")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list invoices"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: invoices})
}

// CancelSale handles POST /api/sales/{id}/cancel
func (h *SalesHandler) CancelSale(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid invoice ID"})
		return
	}

	invoice, err := h.cancelSale.Handle(r.Context(), command.CancelSaleCommand{
		InvoiceID: uint(id),
		Actor:     auth.ActorFromContext(r.Context()),
	})
	if err != nil {
		h.respondSaleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale cancelled successfully",
		Data:    invoice,
	})
}

func (h *SalesHandler) respondSaleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound), errors.Is(err, ledgerdomain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, ledgerdomain.ErrConflict):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, ledgerdomain.ErrInsufficientStock),
		errors.Is(err, ledgerdomain.ErrInvalidQuantity):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.WithContext(r.Context()).Error().Err(err).Msg("Sale request failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Sale request failed"})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
