package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/customer/domain"
)

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	CreditLimit float64
}

// CreateCustomerHandler handles customer creation
type CreateCustomerHandler struct {
	customers domain.CustomerRepository
}

func NewCreateCustomerHandler(customers domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{customers: customers}
}

func (h *CreateCustomerHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if cmd.CreditLimit < 0 {
		return nil, fmt.Errorf("credit limit cannot be negative")
	}
	if cmd.Email != "" {
		if existing, _ := h.customers.FindByEmail(ctx, cmd.Email); existing != nil {
			return nil, fmt.Errorf("email already registered")
		}
	}

	customer := &domain.Customer{
		Name:        cmd.Name,
		Email:       cmd.Email,
		Phone:       cmd.Phone,
		Address:     cmd.Address,
		CreditLimit: cmd.CreditLimit,
		IsActive:    true,
	}

	if err := h.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// UpdateCustomerCommand represents the command to update a customer.
// Loyalty points are absent on purpose; they move through accrual,
// claw-back and redemption only.
type UpdateCustomerCommand struct {
	CustomerID  uint
	Name        string
	Email       string
	Phone       string
	Address     string
	CreditLimit float64
	IsActive    bool
}

// UpdateCustomerHandler handles customer update
type UpdateCustomerHandler struct {
	customers domain.CustomerRepository
}

func NewUpdateCustomerHandler(customers domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{customers: customers}
}

func (h *UpdateCustomerHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*domain.Customer, error) {
	if cmd.CustomerID == 0 {
		return nil, fmt.Errorf("invalid customer id")
	}
	if cmd.CreditLimit < 0 {
		return nil, fmt.Errorf("credit limit cannot be negative")
	}

	customer, err := h.customers.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	if cmd.Name != "" {
		customer.Name = cmd.Name
	}
	if cmd.Email != "" && cmd.Email != customer.Email {
		if existing, _ := h.customers.FindByEmail(ctx, cmd.Email); existing != nil {
			return nil, fmt.Errorf("email already registered")
		}
		customer.Email = cmd.Email
	}
	customer.Phone = cmd.Phone
	customer.Address = cmd.Address
	customer.CreditLimit = cmd.CreditLimit
	customer.IsActive = cmd.IsActive

	if err := h.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	CustomerID uint
}

// DeleteCustomerHandler handles customer deletion (soft delete)
type DeleteCustomerHandler struct {
	customers domain.CustomerRepository
}

func NewDeleteCustomerHandler(customers domain.CustomerRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{customers: customers}
}

func (h *DeleteCustomerHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if cmd.CustomerID == 0 {
		return fmt.Errorf("invalid customer id")
	}

	if _, err := h.customers.FindByID(ctx, cmd.CustomerID); err != nil {
		return domain.ErrCustomerNotFound
	}

	if err := h.customers.Delete(ctx, cmd.CustomerID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
