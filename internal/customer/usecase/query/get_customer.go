package query

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/customer/domain"
)

// GetCustomerQuery represents the query to get a customer by ID
type GetCustomerQuery struct {
	CustomerID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	customers domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(customers domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{customers: customers}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(ctx context.Context, q GetCustomerQuery) (*domain.Customer, error) {
	if q.CustomerID == 0 {
		return nil, domain.ErrCustomerNotFound
	}

	customer, err := h.customers.FindByID(ctx, q.CustomerID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	return customer, nil
}

// ListCustomersQuery represents the query to list customers
type ListCustomersQuery struct {
	Limit  int
	Offset int
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	customers domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(customers domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{customers: customers}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(ctx context.Context, q ListCustomersQuery) ([]domain.Customer, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	customers, err := h.customers.FindAll(ctx, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}
