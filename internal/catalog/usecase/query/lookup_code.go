package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/aungmyo/ims-backend/internal/catalog/domain"
)

// LookupCodeQuery resolves a scanned barcode/QR payload to a product.
// The scanner side is external; it hands over the product code as text.
type LookupCodeQuery struct {
	Code string
}

// LookupCodeHandler handles barcode lookup
type LookupCodeHandler struct {
	products domain.ProductRepository
}

// NewLookupCodeHandler creates a new lookup handler
func NewLookupCodeHandler(products domain.ProductRepository) *LookupCodeHandler {
	return &LookupCodeHandler{products: products}
}

// Handle executes the lookup
func (h *LookupCodeHandler) Handle(ctx context.Context, q LookupCodeQuery) (*domain.Product, error) {
	code := strings.TrimSpace(q.Code)
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}

	product, err := h.products.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	return product, nil
}
