package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/ledger/usecase/query"
	"github.com/aungmyo/ims-backend/pkg/auth"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// LedgerHandler handles HTTP requests for stock movements
type LedgerHandler struct {
	applyMovement *command.ApplyMovementHandler
	listMovements *query.ListMovementsHandler
	stats         *query.GetMovementStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	movementTotal  *prometheus.CounterVec
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	applyMovement *command.ApplyMovementHandler,
	listMovements *query.ListMovementsHandler,
	stats *query.GetMovementStatsHandler,
) *LedgerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_requests_total",
			Help: "Total number of requests to the stock ledger",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_request_duration_seconds",
			Help:    "Duration of stock ledger requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	movementTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_movements_total",
			Help: "Total number of applied stock movements",
		},
		[]string{"direction"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(movementTotal)

	return &LedgerHandler{
		applyMovement:  applyMovement,
		listMovements:  listMovements,
		stats:          stats,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		movementTotal:  movementTotal,
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
func (h *LedgerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/movements", h.metricsMiddleware("/api/movements", h.ListMovements)).Methods("GET")
	router.HandleFunc("/api/movements", h.metricsMiddleware("/api/movements", h.ApplyMovement)).Methods("POST")
	router.HandleFunc("/api/movements/stats", h.metricsMiddleware("/api/movements/stats", h.GetStats)).Methods("GET")
}

// ApplyMovement handles POST /api/movements
func (h *LedgerHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint   `json:"product_id"`
		Direction string `json:"direction"`
		Quantity  int    `json:"quantity"`
		Remark    string `json:"remark"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	movement, err := h.applyMovement.Handle(r.Context(), command.ApplyMovementCommand{
		ProductID: req.ProductID,
		Direction: req.Direction,
		Quantity:  req.Quantity,
		Remark:    req.Remark,
		Actor:     auth.ActorFromContext(r.Context()),
	})
	if err != nil {
		h.respondMovementError(w, r, err)
		return
	}

	h.movementTotal.WithLabelValues(movement.Direction).Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Movement applied successfully",
		Data:    movement,
	})
}

// ListMovements handles GET /api/movements
func (h *LedgerHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	productID, _ := strconv.ParseUint(r.URL.Query().Get("product_id"), 10, 32)

	movements, err := h.listMovements.Handle(r.Context(), query.ListMovementsQuery{
		ProductID: uint(productID),
		Direction: r.URL.Query().Get("direction"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDirection) {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list movements")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list movements"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: movements})
}

// GetStats handles GET /api/movements/stats
func (h *LedgerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Handle(r.Context(), query.GetMovementStatsQuery{})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to compute movement stats")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute stats"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func (h *LedgerHandler) respondMovementError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDirection):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to apply movement")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to apply movement"})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
