package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
	"github.com/aungmyo/ims-backend/internal/purchasing/usecase/command"
	"github.com/aungmyo/ims-backend/internal/purchasing/usecase/query"
	"github.com/aungmyo/ims-backend/pkg/auth"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// PurchasingHandler handles HTTP requests for suppliers and purchase orders
type PurchasingHandler struct {
	createOrder    *command.CreateOrderHandler
	receiveOrder   *command.ReceiveOrderHandler
	cancelOrder    *command.CancelOrderHandler
	createSupplier *command.CreateSupplierHandler
	updateSupplier *command.UpdateSupplierHandler

	getOrder      *query.GetOrderHandler
	listOrders    *query.ListOrdersHandler
	listSuppliers *query.ListSuppliersHandler
}

// NewPurchasingHandler creates a new purchasing handler
func NewPurchasingHandler(
	createOrder *command.CreateOrderHandler,
	receiveOrder *command.ReceiveOrderHandler,
	cancelOrder *command.CancelOrderHandler,
	createSupplier *command.CreateSupplierHandler,
	updateSupplier *command.UpdateSupplierHandler,
	getOrder *query.GetOrderHandler,
	listOrders *query.ListOrdersHandler,
	listSuppliers *query.ListSuppliersHandler,
) *PurchasingHandler {
	return &PurchasingHandler{
		createOrder:    createOrder,
		receiveOrder:   receiveOrder,
		cancelOrder:    cancelOrder,
		createSupplier: createSupplier,
		updateSupplier: updateSupplier,
		getOrder:       getOrder,
		listOrders:     listOrders,
		listSuppliers:  listSuppliers,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all purchasing routes
func (h *PurchasingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/purchase-orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/purchase-orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/api/purchase-orders/{id}", h.GetOrder).Methods("GET")
	router.HandleFunc("/api/purchase-orders/{id}/receive", h.ReceiveOrder).Methods("POST")
	router.HandleFunc("/api/purchase-orders/{id}/cancel", h.CancelOrder).Methods("POST")

	router.HandleFunc("/api/suppliers", h.ListSuppliers).Methods("GET")
	router.HandleFunc("/api/suppliers", h.CreateSupplier).Methods("POST")
	router.HandleFunc("/api/suppliers/{id}", h.UpdateSupplier).Methods("PUT")
}

// CreateOrder handles POST /api/purchase-orders
func (h *PurchasingHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SupplierID   uint   `json:"supplier_id"`
		ExpectedDate string `json:"expected_date"`
		Items        []struct {
			ProductID uint    `json:"product_id"`
			Quantity  int     `json:"quantity"`
			UnitCost  float64 `json:"unit_cost"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.CreateOrderCommand{SupplierID: req.SupplierID}
	if req.ExpectedDate != "" {
		expected, err := time.Parse("2006-01-02", req.ExpectedDate)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid expected_date, want YYYY-MM-DD"})
			return
		}
		cmd.ExpectedDate = &expected
	}
	for _, item := range req.Items {
		cmd.Lines = append(cmd.Lines, command.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	order, err := h.createOrder.Handle(r.Context(), cmd)
	if err != nil {
		h.respondOrderError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Purchase order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/purchase-orders/{id}
func (h *PurchasingHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order ID"})
		return
	}

	order, err := h.getOrder.Handle(r.Context(), query.GetOrderQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Purchase order not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

// ListOrders handles GET /api/purchase-orders
func (h *PurchasingHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listOrders.Handle(r.Context(), query.ListOrdersQuery{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list purchase orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list purchase orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// ReceiveOrder handles POST /api/purchase-orders/{id}/receive
func (h *PurchasingHandler) ReceiveOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order ID"})
		return
	}

	var req struct {
		Items []struct {
			ItemID   uint `json:"item_id"`
			Quantity int  `json:"quantity"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.ReceiveOrderCommand{
		OrderID: uint(id),
		Actor:   auth.ActorFromContext(r.Context()),
	}
	for _, item := range req.Items {
		cmd.Lines = append(cmd.Lines, command.ReceiptLine{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	result, err := h.receiveOrder.Handle(r.Context(), cmd)
	if err != nil {
		h.respondOrderError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Receipt recorded successfully",
		Data:    result,
	})
}

// CancelOrder handles POST /api/purchase-orders/{id}/cancel
func (h *PurchasingHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order ID"})
		return
	}

	if err := h.cancelOrder.Handle(r.Context(), command.CancelOrderCommand{OrderID: uint(id)}); err != nil {
		h.respondOrderError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Purchase order cancelled successfully"})
}

// CreateSupplier handles POST /api/suppliers
func (h *PurchasingHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	supplier, err := h.createSupplier.Handle(r.Context(), command.CreateSupplierCommand{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

// UpdateSupplier handles PUT /api/suppliers/{id}
func (h *PurchasingHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid supplier ID"})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	supplier, err := h.updateSupplier.Handle(r.Context(), command.UpdateSupplierCommand{
		ID:       uint(id),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.respondOrderError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier updated successfully",
		Data:    supplier,
	})
}

// ListSuppliers handles GET /api/suppliers
func (h *PurchasingHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	suppliers, err := h.listSuppliers.Handle(r.Context(), query.ListSuppliersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list suppliers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list suppliers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: suppliers})
}

func (h *PurchasingHandler) respondOrderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrOrderItemNotFound),
		errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, ledgerdomain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, ledgerdomain.ErrConflict):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrOverReceipt),
		errors.Is(err, domain.ErrNotCancellable),
		errors.Is(err, domain.ErrOrderClosed),
		errors.Is(err, ledgerdomain.ErrInvalidQuantity):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.WithContext(r.Context()).Error().Err(err).Msg("Purchasing request failed")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
