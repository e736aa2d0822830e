package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aungmyo/ims-backend/internal/customer/domain"
	"github.com/aungmyo/ims-backend/internal/customer/usecase/command"
	"github.com/aungmyo/ims-backend/internal/customer/usecase/query"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	createCustomer *command.CreateCustomerHandler
	updateCustomer *command.UpdateCustomerHandler
	deleteCustomer *command.DeleteCustomerHandler
	redeemPoints   *command.RedeemPointsHandler

	getCustomer   *query.GetCustomerHandler
	listCustomers *query.ListCustomersHandler
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	createCustomer *command.CreateCustomerHandler,
	updateCustomer *command.UpdateCustomerHandler,
	deleteCustomer *command.DeleteCustomerHandler,
	redeemPoints *command.RedeemPointsHandler,
	getCustomer *query.GetCustomerHandler,
	listCustomers *query.ListCustomersHandler,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomer: createCustomer,
		updateCustomer: updateCustomer,
		deleteCustomer: deleteCustomer,
		redeemPoints:   redeemPoints,
		getCustomer:    getCustomer,
		listCustomers:  listCustomers,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/customers", h.ListCustomers).Methods("GET")
	router.HandleFunc("/api/customers", h.CreateCustomer).Methods("POST")
	router.HandleFunc("/api/customers/{id}", h.GetCustomer).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.UpdateCustomer).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.DeleteCustomer).Methods("DELETE")
	router.HandleFunc("/api/customers/{id}/redeem", h.RedeemPoints).Methods("POST")
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Email       string  `json:"email"`
		Phone       string  `json:"phone"`
		Address     string  `json:"address"`
		CreditLimit float64 `json:"credit_limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	customer, err := h.createCustomer.Handle(r.Context(), command.CreateCustomerCommand{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	customer, err := h.getCustomer.Handle(r.Context(), query.GetCustomerQuery{CustomerID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Customer not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	customers, err := h.listCustomers.Handle(r.Context(), query.ListCustomersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list customers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list customers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customers})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Email       string  `json:"email"`
		Phone       string  `json:"phone"`
		Address     string  `json:"address"`
		CreditLimit float64 `json:"credit_limit"`
		IsActive    bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	customer, err := h.updateCustomer.Handle(r.Context(), command.UpdateCustomerCommand{
		CustomerID:  uint(id),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondCustomerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	if err := h.deleteCustomer.Handle(r.Context(), command.DeleteCustomerCommand{CustomerID: uint(id)}); err != nil {
		h.respondCustomerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Customer deleted successfully"})
}

// RedeemPoints handles POST /api/customers/{id}/redeem
func (h *CustomerHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	var req struct {
		Points int `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	customer, err := h.redeemPoints.Handle(r.Context(), command.RedeemPointsCommand{
		CustomerID: uint(id),
		Points:     req.Points,
	})
	if err != nil {
		h.respondCustomerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Points redeemed successfully",
		Data:    customer,
	})
}

func (h *CustomerHandler) respondCustomerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientPoints), errors.Is(err, domain.ErrInvalidPointsAmount):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.WithContext(r.Context()).Error().Err(err).Msg("Customer request failed")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
