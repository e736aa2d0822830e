package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/kafka"
	"github.com/aungmyo/ims-backend/pkg/database"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// SaleLine is one (product, quantity) pair of the cart
type SaleLine struct {
	ProductID uint
	Quantity  int
}

// CreateSaleCommand represents the command to create a sale
type CreateSaleCommand struct {
	CustomerName string
	CustomerID   *uint
	Lines        []SaleLine
	Actor        string
}

// CreateSaleHandler turns a cart into an invoice, its items, one stock-out
// movement per line and the customer's loyalty accrual, committed as a
// single transaction.
type CreateSaleHandler struct {
	tx          database.TxManager
	products    catalogdomain.ProductRepository
	invoices    domain.InvoiceRepository
	customers   customerdomain.CustomerRepository
	ledger      *ledgercommand.ApplyMovementHandler
	publisher   *kafka.Publisher
	accrualRate int
}

// NewCreateSaleHandler creates a new create sale handler. accrualRate is the
// sale total per loyalty point, e.g. 100 means one point per 100 spent.
func NewCreateSaleHandler(
	tx database.TxManager,
	products catalogdomain.ProductRepository,
	invoices domain.InvoiceRepository,
	customers customerdomain.CustomerRepository,
	ledger *ledgercommand.ApplyMovementHandler,
	publisher *kafka.Publisher,
	accrualRate int,
) *CreateSaleHandler {
	if accrualRate <= 0 {
		accrualRate = 100
	}
	return &CreateSaleHandler{
		tx:          tx,
		products:    products,
		invoices:    invoices,
		customers:   customers,
		ledger:      ledger,
		publisher:   publisher,
		accrualRate: accrualRate,
	}
}

// Handle executes the sale
func (h *CreateSaleHandler) Handle(ctx context.Context, cmd CreateSaleCommand) (*domain.Invoice, error) {
	if len(cmd.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, line := range cmd.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d requested %d",
				ledgerdomain.ErrInvalidQuantity, line.ProductID, line.Quantity)
		}
	}

	// Stable lock order across concurrent sales
	lines := make([]SaleLine, len(cmd.Lines))
	copy(lines, cmd.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	var (
		invoice *domain.Invoice
		points  int
	)
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Resolve and lock every product, and reject any short line, before
		// touching anything. Locks hold until commit, so the checks stay
		// valid while the movements apply.
		products := make(map[uint]*catalogdomain.Product, len(lines))
		for _, line := range lines {
			product, err := h.products.FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ledgerdomain.ErrProductNotFound, line.ProductID)
				}
				return fmt.Errorf("failed to load product %d: %w", line.ProductID, err)
			}
			if line.Quantity > product.Stock {
				return fmt.Errorf("%w: product %q has %d, requested %d",
					ledgerdomain.ErrInsufficientStock, product.Code, product.Stock, line.Quantity)
			}
			products[line.ProductID] = product
		}

		if cmd.CustomerID != nil {
			if _, err := h.customers.FindByID(ctx, *cmd.CustomerID); err != nil {
				return customerdomain.ErrCustomerNotFound
			}
		}

		now := time.Now()
		number, err := h.nextNumber(ctx, now)
		if err != nil {
			return err
		}

		inv := &domain.Invoice{
			Number:       number,
			CustomerID:   cmd.CustomerID,
			CustomerName: cmd.CustomerName,
			Date:         now,
			Status:       domain.StatusCompleted,
			Actor:        cmd.Actor,
		}
		for _, line := range lines {
			product := products[line.ProductID]
			amount := product.Price * float64(line.Quantity)
			inv.Items = append(inv.Items, domain.InvoiceItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Amount:    amount,
			})
			inv.Total += amount
		}

		if err := h.invoices.Create(ctx, inv); err != nil {
			return fmt.Errorf("failed to persist invoice: %w", err)
		}

		remarkName := cmd.CustomerName
		if remarkName == "" {
			remarkName = "walk-in"
		}
		for _, line := range lines {
			_, err := h.ledger.Handle(ctx, ledgercommand.ApplyMovementCommand{
				ProductID: line.ProductID,
				Direction: ledgerdomain.DirectionOut,
				Quantity:  line.Quantity,
				Remark:    fmt.Sprintf("Sale %s - Invoice %s", remarkName, number),
				Actor:     cmd.Actor,
			})
			if err != nil {
				return err
			}
		}

		if cmd.CustomerID != nil {
			points = int(math.Floor(inv.Total / float64(h.accrualRate)))
			if points > 0 {
				if err := h.customers.AddPoints(ctx, *cmd.CustomerID, points); err != nil {
					return fmt.Errorf("failed to accrue loyalty points: %w", err)
				}
			}
		}

		invoice = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.publish(ctx, invoice, points)
	return invoice, nil
}

// nextNumber allocates a date-stamped sequence number, e.g. INV-20260115-003.
// The count runs inside the sale transaction and the unique index on number
// turns an allocation race into a rollback instead of a duplicate.
func (h *CreateSaleHandler) nextNumber(ctx context.Context, now time.Time) (string, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := h.invoices.CountByDateRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return "", fmt.Errorf("failed to allocate invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%s-%03d", now.Format("20060102"), count+1), nil
}

func (h *CreateSaleHandler) publish(ctx context.Context, invoice *domain.Invoice, points int) {
	if h.publisher == nil {
		return
	}
	event := kafka.SaleCompletedEvent{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.Number,
		CustomerID:    invoice.CustomerID,
		CustomerName:  invoice.CustomerName,
		Total:         invoice.Total,
		ItemCount:     len(invoice.Items),
		PointsAccrued: points,
	}
	if err := h.publisher.PublishSaleCompleted(ctx, event); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("invoice_number", invoice.Number).
			Msg("Failed to publish sale completed event")
	}
}
