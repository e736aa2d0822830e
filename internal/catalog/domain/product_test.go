package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

func TestProductStockFlags(t *testing.T) {
	p := domain.Product{Stock: 3, MinStock: 5}
	assert.True(t, p.IsLowStock())
	assert.False(t, p.IsOutOfStock())

	p.Stock = 0
	assert.True(t, p.IsOutOfStock())

	p.Stock = 6
	assert.False(t, p.IsLowStock())
}

func TestProductStockValue(t *testing.T) {
	p := domain.Product{Stock: 4, Price: 12.5}
	assert.Equal(t, 50.0, p.StockValue())
}

func TestProductProfitMargin(t *testing.T) {
	p := domain.Product{Price: 10, Cost: 6}
	assert.InDelta(t, 0.4, p.ProfitMargin(), 1e-9)

	assert.Zero(t, (&domain.Product{Price: 10}).ProfitMargin())
	assert.Zero(t, (&domain.Product{Cost: 6}).ProfitMargin())
}
