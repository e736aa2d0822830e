package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository wraps a ProductRepository with tracing spans on
// the paths the ledger and sale coordinators hit.
type TracingProductRepository struct {
	domain.ProductRepository
}

func NewTracingProductRepository(db *gorm.DB) *TracingProductRepository {
	return &TracingProductRepository{ProductRepository: NewGormProductRepository(db)}
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID")
	span.SetAttributes(attribute.Int("product.id", int(id)))
	defer span.End()

	product, err := r.ProductRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.code", product.Code),
		attribute.Int("product.stock", product.Stock),
	)
	return product, nil
}

func (r *TracingProductRepository) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByIDForUpdate")
	span.SetAttributes(attribute.Int("product.id", int(id)))
	defer span.End()

	product, err := r.ProductRepository.FindByIDForUpdate(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.stock", product.Stock))
	return product, nil
}

func (r *TracingProductRepository) UpdateStockGuarded(ctx context.Context, id uint, oldStock, newStock int) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateStockGuarded")
	span.SetAttributes(
		attribute.Int("product.id", int(id)),
		attribute.Int("stock.old", oldStock),
		attribute.Int("stock.new", newStock),
	)
	defer span.End()

	updated, err := r.ProductRepository.UpdateStockGuarded(ctx, id, oldStock, newStock)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("stock.guard_hit", updated))
	return updated, nil
}
