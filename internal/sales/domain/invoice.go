package domain

import (
	"context"
	"errors"
	"time"
)

// Invoice statuses
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Invoice represents a completed sale. Invoices and their items are immutable
// after creation except for the completed -> cancelled status transition,
// which reverses the sale's stock movements and loyalty accrual.
type Invoice struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Number       string        `json:"number" gorm:"not null;uniqueIndex"`
	CustomerID   *uint         `json:"customer_id" gorm:"index"`
	CustomerName string        `json:"customer_name" gorm:"not null"`
	Date         time.Time     `json:"date" gorm:"not null;index"`
	Total        float64       `json:"total" gorm:"not null"`
	Status       string        `json:"status" gorm:"not null;default:'completed'"`
	Actor        string        `json:"actor"`
	Items        []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// TableName specifies the table name
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line of an invoice. UnitPrice is the product price at
// sale time; Amount = Quantity * UnitPrice.
type InvoiceItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	InvoiceID uint    `json:"invoice_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
	Amount    float64 `json:"amount" gorm:"not null"`
}

// TableName specifies the table name
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Errors returned by sale operations
var (
	ErrEmptyCart        = errors.New("sale has no items")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrAlreadyCancelled = errors.New("invoice already cancelled")
)

// ProductSales is the aggregate row for top-seller reporting
type ProductSales struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// SalesTotals summarizes completed invoices over a date window
type SalesTotals struct {
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// InvoiceRepository defines the contract for invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	FindByID(ctx context.Context, id uint) (*Invoice, error)
	FindByNumber(ctx context.Context, number string) (*Invoice, error)
	FindAll(ctx context.Context, limit, offset int) ([]Invoice, error)
	FindByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]Invoice, error)
	FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]Invoice, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	// CountByDateRange counts invoices of any status in [from, to);
	// it backs per-day invoice numbering.
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
	// Totals aggregates completed invoices in [from, to).
	Totals(ctx context.Context, from, to time.Time) (*SalesTotals, error)
	// TopProducts aggregates item quantities of completed invoices in [from, to).
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error)
}
