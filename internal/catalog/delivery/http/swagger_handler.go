package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Register a new catalog product with its opening stock
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{code=string,name=string,category_id=int,price=number,cost=number,stock=int,min_stock=int,is_active=bool} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Get a paginated product list, optionally filtered by category
// @Tags Catalog
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param category_id query int false "Category filter"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// LookupCode godoc
// @Summary Look up product by code
// @Description Resolve a barcode or SKU to its product
// @Tags Catalog
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/code/{code} [get]
func (h *CatalogHandler) LookupCodeDoc() {}
