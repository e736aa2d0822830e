package domain

import (
	"context"
	"time"
)

// Movement directions
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// StockMovement is one entry in the append-only stock audit trail. Rows are
// written once and never updated or deleted; the invariant
// NewStock == OldStock +/- Quantity is established by the ledger engine before
// the row is persisted.
type StockMovement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Direction string    `json:"direction" gorm:"not null;size:8"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	OldStock  int       `json:"old_stock" gorm:"not null"`
	NewStock  int       `json:"new_stock" gorm:"not null"`
	Remark    string    `json:"remark"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (StockMovement) TableName() string {
	return "stock_movements"
}

// MovementRepository defines the contract for movement data access.
// The contract is append-only: there is no update or delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *StockMovement) error
	FindByProduct(ctx context.Context, productID uint, limit, offset int) ([]StockMovement, error)
	FindByDirection(ctx context.Context, direction string, limit, offset int) ([]StockMovement, error)
	FindAll(ctx context.Context, limit, offset int) ([]StockMovement, error)
	CountByDirection(ctx context.Context, direction string) (int64, error)
}
