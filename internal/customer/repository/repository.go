package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aungmyo/ims-backend/internal/customer/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{})
}

func (r *GormCustomerRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.handle(ctx).Create(customer).Error
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.handle(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.handle(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.handle(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.handle(ctx).Limit(limit).Offset(offset).Order("id").Find(&customers).Error
	return customers, err
}

// Update never writes loyalty_points; the balance moves through AddPoints only.
func (r *GormCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.handle(ctx).Omit("loyalty_points").Save(customer).Error
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.handle(ctx).Delete(&domain.Customer{}, id).Error
}

func (r *GormCustomerRepository) AddPoints(ctx context.Context, id uint, delta int) error {
	return r.handle(ctx).Model(&domain.Customer{}).
		Where("id = ?", id).
		Update("loyalty_points", gorm.Expr("GREATEST(loyalty_points + ?, 0)", delta)).Error
}
