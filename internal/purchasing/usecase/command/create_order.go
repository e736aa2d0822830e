package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

// OrderLine is one requested line of a new purchase order
type OrderLine struct {
	ProductID uint
	Quantity  int
	UnitCost  float64
}

// CreateOrderCommand represents the command to create a purchase order
type CreateOrderCommand struct {
	SupplierID   uint
	ExpectedDate *time.Time
	Lines        []OrderLine
}

// CreateOrderHandler handles purchase order creation
type CreateOrderHandler struct {
	tx        database.TxManager
	orders    domain.OrderRepository
	suppliers domain.SupplierRepository
	products  catalogdomain.ProductRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(
	tx database.TxManager,
	orders domain.OrderRepository,
	suppliers domain.SupplierRepository,
	products catalogdomain.ProductRepository,
) *CreateOrderHandler {
	return &CreateOrderHandler{tx: tx, orders: orders, suppliers: suppliers, products: products}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.PurchaseOrder, error) {
	if len(cmd.Lines) == 0 {
		return nil, fmt.Errorf("purchase order has no items")
	}
	for _, line := range cmd.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d requested %d",
				ledgerdomain.ErrInvalidQuantity, line.ProductID, line.Quantity)
		}
		if line.UnitCost < 0 {
			return nil, fmt.Errorf("unit cost cannot be negative")
		}
	}

	var order *domain.PurchaseOrder
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := h.suppliers.FindByID(ctx, cmd.SupplierID); err != nil {
			return domain.ErrSupplierNotFound
		}
		for _, line := range cmd.Lines {
			if _, err := h.products.FindByID(ctx, line.ProductID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ledgerdomain.ErrProductNotFound, line.ProductID)
				}
				return fmt.Errorf("failed to load product %d: %w", line.ProductID, err)
			}
		}

		now := time.Now()
		number, err := h.nextNumber(ctx, now)
		if err != nil {
			return err
		}

		po := &domain.PurchaseOrder{
			Number:       number,
			SupplierID:   cmd.SupplierID,
			OrderDate:    now,
			ExpectedDate: cmd.ExpectedDate,
			Status:       domain.StatusPending,
		}
		for _, line := range cmd.Lines {
			total := line.UnitCost * float64(line.Quantity)
			po.Items = append(po.Items, domain.PurchaseOrderItem{
				ProductID:       line.ProductID,
				QuantityOrdered: line.Quantity,
				UnitCost:        line.UnitCost,
				TotalCost:       total,
			})
			po.TotalAmount += total
		}

		if err := h.orders.Create(ctx, po); err != nil {
			return fmt.Errorf("failed to persist purchase order: %w", err)
		}

		order = po
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// nextNumber allocates a date-stamped sequence number, e.g. PO-20260115-002
func (h *CreateOrderHandler) nextNumber(ctx context.Context, now time.Time) (string, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := h.orders.CountByDateRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return "", fmt.Errorf("failed to allocate order number: %w", err)
	}
	return fmt.Sprintf("PO-%s-%03d", now.Format("20060102"), count+1), nil
}
