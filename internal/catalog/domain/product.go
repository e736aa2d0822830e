package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Product represents the product entity. Stock is owned by the ledger:
// nothing outside the ledger engine may write it after creation.
type Product struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Code       string         `json:"code" gorm:"not null;uniqueIndex"`
	Name       string         `json:"name" gorm:"not null"`
	CategoryID uint           `json:"category_id" gorm:"index"`
	Price      float64        `json:"price" gorm:"not null"`
	Cost       float64        `json:"cost" gorm:"not null;default:0"`
	Stock      int            `json:"stock" gorm:"not null;default:0"`
	MinStock   int            `json:"min_stock" gorm:"not null;default:0"`
	IsActive   bool           `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether stock is at or below the minimum threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsOutOfStock reports whether the product has no stock left
func (p *Product) IsOutOfStock() bool {
	return p.Stock <= 0
}

// StockValue returns the value of the stock on hand at the current price
func (p *Product) StockValue() float64 {
	return float64(p.Stock) * p.Price
}

// ProfitMargin returns (price - cost) / price, or 0 when either is not positive
func (p *Product) ProfitMargin() float64 {
	if p.Price <= 0 || p.Cost <= 0 {
		return 0
	}
	return (p.Price - p.Cost) / p.Price
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	// FindByIDForUpdate locks the product row for the duration of the
	// surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uint) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindAll(ctx context.Context, limit, offset int) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]Product, error)
	FindLowStock(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// UpdateStockGuarded writes newStock only if the stored stock still
	// equals oldStock, reporting whether the write happened.
	UpdateStockGuarded(ctx context.Context, id uint, oldStock, newStock int) (bool, error)
}
