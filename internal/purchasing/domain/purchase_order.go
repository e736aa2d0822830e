package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Purchase order statuses
const (
	StatusPending   = "pending"
	StatusPartial   = "partial"
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)

// Supplier represents a goods supplier
type Supplier struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex"`
	Phone     string         `json:"phone"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Supplier) TableName() string {
	return "suppliers"
}

// PurchaseOrder represents a supplier order. TotalAmount always equals the
// sum of its items' TotalCost.
type PurchaseOrder struct {
	ID           uint                `json:"id" gorm:"primaryKey"`
	Number       string              `json:"number" gorm:"not null;uniqueIndex"`
	SupplierID   uint                `json:"supplier_id" gorm:"not null;index"`
	OrderDate    time.Time           `json:"order_date" gorm:"not null;index"`
	ExpectedDate *time.Time          `json:"expected_date"`
	TotalAmount  float64             `json:"total_amount" gorm:"not null"`
	Status       string              `json:"status" gorm:"not null;default:'pending'"`
	Items        []PurchaseOrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TableName specifies the table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// IsFullyReceived reports whether every item is received in full
func (po *PurchaseOrder) IsFullyReceived() bool {
	for _, item := range po.Items {
		if item.QuantityReceived < item.QuantityOrdered {
			return false
		}
	}
	return len(po.Items) > 0
}

// PurchaseOrderItem is one line of a purchase order.
// QuantityReceived never exceeds QuantityOrdered.
type PurchaseOrderItem struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	OrderID          uint    `json:"order_id" gorm:"not null;index"`
	ProductID        uint    `json:"product_id" gorm:"not null;index"`
	QuantityOrdered  int     `json:"quantity_ordered" gorm:"not null"`
	QuantityReceived int     `json:"quantity_received" gorm:"not null;default:0"`
	UnitCost         float64 `json:"unit_cost" gorm:"not null"`
	TotalCost        float64 `json:"total_cost" gorm:"not null"`
}

// TableName specifies the table name
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// Errors returned by purchasing operations
var (
	ErrOrderNotFound     = errors.New("purchase order not found")
	ErrOrderItemNotFound = errors.New("purchase order item not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrOverReceipt       = errors.New("receipt exceeds quantity ordered")
	ErrNotCancellable    = errors.New("only pending orders can be cancelled")
	ErrOrderClosed       = errors.New("order is cancelled or fully received")
)

// OrderRepository defines the contract for purchase order data access
type OrderRepository interface {
	Create(ctx context.Context, order *PurchaseOrder) error
	FindByID(ctx context.Context, id uint) (*PurchaseOrder, error)
	// FindByIDForUpdate locks the order row for the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uint) (*PurchaseOrder, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	UpdateItemReceived(ctx context.Context, itemID uint, quantityReceived int) error
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}

// SupplierRepository defines the contract for supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	FindByID(ctx context.Context, id uint) (*Supplier, error)
	FindAll(ctx context.Context, limit, offset int) ([]Supplier, error)
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uint) error
}
