package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aungmyo/ims-backend/internal/catalog/usecase/command"
	"github.com/aungmyo/ims-backend/internal/catalog/usecase/query"
	"github.com/aungmyo/ims-backend/pkg/logger"
)

// CatalogHandler handles HTTP requests for products and categories
type CatalogHandler struct {
	createProduct  *command.CreateProductHandler
	updateProduct  *command.UpdateProductHandler
	deleteProduct  *command.DeleteProductHandler
	createCategory *command.CreateCategoryHandler
	updateCategory *command.UpdateCategoryHandler
	deleteCategory *command.DeleteCategoryHandler

	getProduct     *query.GetProductHandler
	lookupCode     *query.LookupCodeHandler
	listProducts   *query.ListProductsHandler
	listCategories *query.ListCategoriesHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	createProduct *command.CreateProductHandler,
	updateProduct *command.UpdateProductHandler,
	deleteProduct *command.DeleteProductHandler,
	createCategory *command.CreateCategoryHandler,
	updateCategory *command.UpdateCategoryHandler,
	deleteCategory *command.DeleteCategoryHandler,
	getProduct *query.GetProductHandler,
	lookupCode *query.LookupCodeHandler,
	listProducts *query.ListProductsHandler,
	listCategories *query.ListCategoriesHandler,
) *CatalogHandler {
	return &CatalogHandler{
		createProduct:  createProduct,
		updateProduct:  updateProduct,
		deleteProduct:  deleteProduct,
		createCategory: createCategory,
		updateCategory: updateCategory,
		deleteCategory: deleteCategory,
		getProduct:     getProduct,
		lookupCode:     lookupCode,
		listProducts:   listProducts,
		listCategories: listCategories,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products", h.CreateProduct).Methods("POST")
	router.HandleFunc("/api/products/code/{code}", h.LookupCode).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.DeleteProduct).Methods("DELETE")

	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	router.HandleFunc("/api/categories", h.CreateCategory).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.UpdateCategory).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.DeleteCategory).Methods("DELETE")
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string  `json:"code"`
		Name       string  `json:"name"`
		CategoryID uint    `json:"category_id"`
		Price      float64 `json:"price"`
		Cost       float64 `json:"cost"`
		Stock      int     `json:"stock"`
		MinStock   int     `json:"min_stock"`
		IsActive   *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product, err := h.createProduct.Handle(r.Context(), command.CreateProductCommand{
		Code:       req.Code,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Cost:       req.Cost,
		Stock:      req.Stock,
		MinStock:   req.MinStock,
		IsActive:   isActive,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	product, err := h.getProduct.Handle(r.Context(), query.GetProductQuery{ProductID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// LookupCode handles GET /api/products/code/{code}
func (h *CatalogHandler) LookupCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	product, err := h.lookupCode.Handle(r.Context(), query.LookupCodeQuery{Code: code})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	categoryID, _ := strconv.ParseUint(r.URL.Query().Get("category_id"), 10, 32)

	products, err := h.listProducts.Handle(r.Context(), query.ListProductsQuery{
		CategoryID: uint(categoryID),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Code       string  `json:"code"`
		Name       string  `json:"name"`
		CategoryID uint    `json:"category_id"`
		Price      float64 `json:"price"`
		Cost       float64 `json:"cost"`
		MinStock   int     `json:"min_stock"`
		IsActive   bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ProductID:  id,
		Code:       req.Code,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Cost:       req.Cost,
		MinStock:   req.MinStock,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondError(w, r, err, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	if err := h.deleteProduct.Handle(r.Context(), command.DeleteProductCommand{ProductID: id}); err != nil {
		respondError(w, r, err, "Failed to delete product")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.createCategory.Handle(r.Context(), command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	categories, err := h.listCategories.Handle(r.Context(), query.ListCategoriesQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list categories"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category ID"})
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsActive    bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.updateCategory.Handle(r.Context(), command.UpdateCategoryCommand{
		CategoryID:  id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(w, r, err, "Failed to update category")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category ID"})
		return
	}

	if err := h.deleteCategory.Handle(r.Context(), command.DeleteCategoryCommand{CategoryID: id}); err != nil {
		respondError(w, r, err, "Failed to delete category")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}

func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(id), err
}

func respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger.WithContext(r.Context()).Error().Err(err).Msg(fallback)
	respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
