package command

import (
	"context"
	"fmt"
	"math"

	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	ledgercommand "github.com/aungmyo/ims-backend/internal/ledger/usecase/command"
	"github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

// CancelSaleCommand represents the command to cancel a completed invoice
type CancelSaleCommand struct {
	InvoiceID uint
	Actor     string
}

// CancelSaleHandler reverses a completed sale: every line is replayed as an
// inbound movement, the loyalty points the sale accrued are clawed back and
// the invoice flips to cancelled, all in one transaction.
type CancelSaleHandler struct {
	tx          database.TxManager
	invoices    domain.InvoiceRepository
	customers   customerdomain.CustomerRepository
	ledger      *ledgercommand.ApplyMovementHandler
	accrualRate int
}

// NewCancelSaleHandler creates a new cancel sale handler
func NewCancelSaleHandler(
	tx database.TxManager,
	invoices domain.InvoiceRepository,
	customers customerdomain.CustomerRepository,
	ledger *ledgercommand.ApplyMovementHandler,
	accrualRate int,
) *CancelSaleHandler {
	if accrualRate <= 0 {
		accrualRate = 100
	}
	return &CancelSaleHandler{
		tx:          tx,
		invoices:    invoices,
		customers:   customers,
		ledger:      ledger,
		accrualRate: accrualRate,
	}
}

// Handle executes the cancellation
func (h *CancelSaleHandler) Handle(ctx context.Context, cmd CancelSaleCommand) (*domain.Invoice, error) {
	if cmd.InvoiceID == 0 {
		return nil, domain.ErrInvoiceNotFound
	}

	var invoice *domain.Invoice
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := h.invoices.FindByID(ctx, cmd.InvoiceID)
		if err != nil {
			return domain.ErrInvoiceNotFound
		}
		if inv.Status == domain.StatusCancelled {
			return domain.ErrAlreadyCancelled
		}

		for _, item := range inv.Items {
			_, err := h.ledger.Handle(ctx, ledgercommand.ApplyMovementCommand{
				ProductID: item.ProductID,
				Direction: ledgerdomain.DirectionIn,
				Quantity:  item.Quantity,
				Remark:    fmt.Sprintf("Invoice %s cancelled", inv.Number),
				Actor:     cmd.Actor,
			})
			if err != nil {
				return err
			}
		}

		if inv.CustomerID != nil {
			accrued := int(math.Floor(inv.Total / float64(h.accrualRate)))
			if accrued > 0 {
				// AddPoints clamps at zero, so a customer who already spent
				// the points does not go negative.
				if err := h.customers.AddPoints(ctx, *inv.CustomerID, -accrued); err != nil {
					return fmt.Errorf("failed to claw back loyalty points: %w", err)
				}
			}
		}

		if err := h.invoices.UpdateStatus(ctx, inv.ID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}

		inv.Status = domain.StatusCancelled
		invoice = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}
