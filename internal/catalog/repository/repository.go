package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.handle(ctx).Create(product).Error
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.handle(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.handle(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	var product domain.Product
	if err := r.handle(ctx).Where("code = ?", code).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.handle(ctx).Limit(limit).Offset(offset).Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.handle(ctx).
		Where("category_id = ?", categoryID).
		Limit(limit).Offset(offset).Order("id").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindLowStock(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.handle(ctx).
		Where("stock <= min_stock").
		Order("stock").
		Find(&products).Error
	return products, err
}

// Update never writes the stock column; stock belongs to the ledger engine.
func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.handle(ctx).Omit("stock").Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.handle(ctx).Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.handle(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) UpdateStockGuarded(ctx context.Context, id uint, oldStock, newStock int) (bool, error) {
	res := r.handle(ctx).Model(&domain.Product{}).
		Where("id = ? AND stock = ?", id, oldStock).
		Update("stock", newStock)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{})
}

func (r *GormCategoryRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return r.handle(ctx).Create(category).Error
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.handle(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.handle(ctx).Limit(limit).Offset(offset).Order("id").Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return r.handle(ctx).Save(category).Error
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.handle(ctx).Delete(&domain.Category{}, id).Error
}
