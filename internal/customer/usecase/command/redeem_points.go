package command

import (
	"context"
	"fmt"

	"github.com/aungmyo/ims-backend/internal/customer/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

// RedeemPointsCommand represents an explicit loyalty point redemption
type RedeemPointsCommand struct {
	CustomerID uint
	Points     int
}

// RedeemPointsHandler handles point redemption
type RedeemPointsHandler struct {
	tx        database.TxManager
	customers domain.CustomerRepository
}

// NewRedeemPointsHandler creates a new redeem points handler
func NewRedeemPointsHandler(tx database.TxManager, customers domain.CustomerRepository) *RedeemPointsHandler {
	return &RedeemPointsHandler{tx: tx, customers: customers}
}

// Handle executes the redemption. The balance check and the deduction run
// under a row lock so two redemptions cannot both spend the same points.
func (h *RedeemPointsHandler) Handle(ctx context.Context, cmd RedeemPointsCommand) (*domain.Customer, error) {
	if cmd.CustomerID == 0 {
		return nil, domain.ErrCustomerNotFound
	}
	if cmd.Points <= 0 {
		return nil, domain.ErrInvalidPointsAmount
	}

	var customer *domain.Customer
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := h.customers.FindByIDForUpdate(ctx, cmd.CustomerID)
		if err != nil {
			return domain.ErrCustomerNotFound
		}

		if c.LoyaltyPoints < cmd.Points {
			return fmt.Errorf("%w: balance %d, requested %d",
				domain.ErrInsufficientPoints, c.LoyaltyPoints, cmd.Points)
		}

		if err := h.customers.AddPoints(ctx, c.ID, -cmd.Points); err != nil {
			return fmt.Errorf("failed to redeem points: %w", err)
		}

		c.LoyaltyPoints -= cmd.Points
		customer = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}
