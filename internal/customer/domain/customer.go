package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer with loyalty tracking. LoyaltyPoints is
// mutated only by the sale coordinator (accrual, cancellation claw-back) and
// the explicit redeem command; it never goes negative.
type Customer struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Email         string         `json:"email" gorm:"uniqueIndex"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	CreditLimit   float64        `json:"credit_limit" gorm:"default:0"`
	LoyaltyPoints int            `json:"loyalty_points" gorm:"not null;default:0"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// Errors returned by customer operations
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInsufficientPoints  = errors.New("insufficient loyalty points")
	ErrInvalidPointsAmount = errors.New("points amount must be positive")
)

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	// FindByIDForUpdate locks the customer row for the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uint) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	// AddPoints adjusts the loyalty balance by delta, clamping at zero
	AddPoints(ctx context.Context, id uint, delta int) error
}
