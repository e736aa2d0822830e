package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
)

// CreateSupplierCommand represents the command to register a supplier
type CreateSupplierCommand struct {
	Name  string
	Email string
	Phone string
}

// CreateSupplierHandler handles supplier registration
type CreateSupplierHandler struct {
	suppliers domain.SupplierRepository
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(suppliers domain.SupplierRepository) *CreateSupplierHandler {
	return &CreateSupplierHandler{suppliers: suppliers}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) (*domain.Supplier, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	supplier := &domain.Supplier{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		IsActive: true,
	}
	if err := h.suppliers.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

// UpdateSupplierCommand represents the command to update a supplier
type UpdateSupplierCommand struct {
	ID       uint
	Name     string
	Email    string
	Phone    string
	IsActive *bool
}

// UpdateSupplierHandler handles supplier updates
type UpdateSupplierHandler struct {
	suppliers domain.SupplierRepository
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(suppliers domain.SupplierRepository) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{suppliers: suppliers}
}

// Handle executes the update supplier command
func (h *UpdateSupplierHandler) Handle(ctx context.Context, cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	supplier, err := h.suppliers.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, domain.ErrSupplierNotFound
	}

	if cmd.Name != "" {
		supplier.Name = cmd.Name
	}
	if cmd.Email != "" {
		supplier.Email = cmd.Email
	}
	if cmd.Phone != "" {
		supplier.Phone = cmd.Phone
	}
	if cmd.IsActive != nil {
		supplier.IsActive = *cmd.IsActive
	}

	if err := h.suppliers.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return supplier, nil
}
