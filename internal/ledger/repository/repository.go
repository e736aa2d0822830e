package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aungmyo/ims-backend/internal/ledger/domain"
	"github.com/aungmyo/ims-backend/pkg/database"
)

type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

func (r *GormMovementRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockMovement{})
}

func (r *GormMovementRepository) handle(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db)
}

func (r *GormMovementRepository) Create(ctx context.Context, movement *domain.StockMovement) error {
	return r.handle(ctx).Create(movement).Error
}

func (r *GormMovementRepository) FindByProduct(ctx context.Context, productID uint, limit, offset int) ([]domain.StockMovement, error) {
	var movements []domain.StockMovement
	err := r.handle(ctx).
		Where("product_id = ?", productID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&movements).Error
	return movements, err
}

func (r *GormMovementRepository) FindByDirection(ctx context.Context, direction string, limit, offset int) ([]domain.StockMovement, error) {
	var movements []domain.StockMovement
	err := r.handle(ctx).
		Where("direction = ?", direction).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&movements).Error
	return movements, err
}

func (r *GormMovementRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.StockMovement, error) {
	var movements []domain.StockMovement
	err := r.handle(ctx).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&movements).Error
	return movements, err
}

func (r *GormMovementRepository) CountByDirection(ctx context.Context, direction string) (int64, error) {
	var count int64
	err := r.handle(ctx).Model(&domain.StockMovement{}).
		Where("direction = ?", direction).
		Count(&count).Error
	return count, err
}
