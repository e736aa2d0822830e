package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

type GormInvoiceRepository struct {
	db *gorm.DB
}

func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func (r *GormInvoiceRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Invoice{}, &domain.InvoiceItem{})
}

func (r *GormInvoiceRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

// Create persists the invoice and its items in one insert chain
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.handle(ctx).Create(invoice).Error
}

func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uint) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.handle(ctx).Preload("Items").First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.handle(ctx).Preload("Items").Where("number = ?", number).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *GormInvoiceRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.handle(ctx).Preload("Items").
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	return invoices, err
}

func (r *GormInvoiceRepository) FindByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.handle(ctx).Preload("Items").
		Where("date >= ? AND date < ?", from, to).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	return invoices, err
}

func (r *GormInvoiceRepository) FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.handle(ctx).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	return invoices, err
}

func (r *GormInvoiceRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.handle(ctx).Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormInvoiceRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.handle(ctx).Model(&domain.Invoice{}).
		Where("date >= ? AND date < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *GormInvoiceRepository) Totals(ctx context.Context, from, to time.Time) (*domain.SalesTotals, error) {
	var totals domain.SalesTotals
	err := r.handle(ctx).Model(&domain.Invoice{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("status = ? AND date >= ? AND date < ?", domain.StatusCompleted, from, to).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *GormInvoiceRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.ProductSales, error) {
	var rows []domain.ProductSales
	err := r.handle(ctx).Table("invoice_items").
		Select(`invoice_items.product_id AS product_id,
			products.name AS product_name,
			SUM(invoice_items.quantity) AS quantity_sold,
			SUM(invoice_items.amount) AS revenue`).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Joins("JOIN products ON products.id = invoice_items.product_id").
		Where("invoices.status = ? AND invoices.date >= ? AND invoices.date < ?",
			domain.StatusCompleted, from, to).
		Group("invoice_items.product_id, products.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
