package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aungmyo/ims-backend/internal/purchasing/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.PurchaseOrder{}, &domain.PurchaseOrderItem{})
}

func (r *GormOrderRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.PurchaseOrder) error {
	return r.handle(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	if err := r.handle(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id uint) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	err := r.handle(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	// Preload does not combine with the locking clause; items are loaded
	// separately inside the same transaction.
	if err := r.handle(ctx).Where("order_id = ?", id).Order("id").Find(&order.Items).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	q := r.handle(ctx).Preload("Items").Order("id DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.handle(ctx).Model(&domain.PurchaseOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormOrderRepository) UpdateItemReceived(ctx context.Context, itemID uint, quantityReceived int) error {
	return r.handle(ctx).Model(&domain.PurchaseOrderItem{}).
		Where("id = ?", itemID).
		Update("quantity_received", quantityReceived).Error
}

func (r *GormOrderRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.handle(ctx).Model(&domain.PurchaseOrder{}).
		Where("order_date >= ? AND order_date < ?", from, to).
		Count(&count).Error
	return count, err
}

type GormSupplierRepository struct {
	db *gorm.DB
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Supplier{})
}

func (r *GormSupplierRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

func (r *GormSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	return r.handle(ctx).Create(supplier).Error
}

func (r *GormSupplierRepository) FindByID(ctx context.Context, id uint) (*domain.Supplier, error) {
	var supplier domain.Supplier
	if err := r.handle(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *GormSupplierRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	err := r.handle(ctx).Limit(limit).Offset(offset).Order("id").Find(&suppliers).Error
	return suppliers, err
}

func (r *GormSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	return r.handle(ctx).Save(supplier).Error
}

func (r *GormSupplierRepository) Delete(ctx context.Context, id uint) error {
	return r.handle(ctx).Delete(&domain.Supplier{}, id).Error
}
