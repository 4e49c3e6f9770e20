package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	service "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService  service.ProductService
	activityService service.ActivityService
	validator       *validator.Validate
}

func NewProductHandler(productService service.ProductService, activityService service.ActivityService) *ProductHandler {
	return &ProductHandler{productService: productService, activityService: activityService, validator: validator.New()}
}

// parsePagination reads page/pageSize query parameters with defaults.
func parsePagination(r *http.Request) (int, int) {

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	return page, pageSize
}

// optionalUserID reads the user_id query parameter when present. Behavioral
// logging accepts anonymous traffic, so absence is not an error.
func optionalUserID(r *http.Request) *uuid.UUID {

	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}

// CreateCategory godoc
//	@Summary		Create a category
//	@Description	Creates a new product category.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category Details"
//	@Success		201			{object}	models.Category					"Successfully created category"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		409			{object}	response.ErrorResponse			"Category name already exists"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Router			/categories [post]
func (h *ProductHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create category input")
			return
		}

		category, err := h.productService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category created successfully", slog.String("categoryID", category.ID.String()))
		response.Success(w, http.StatusCreated, category)
	}
}

// ListCategories godoc
//	@Summary		List categories
//	@Description	Retrieves all product categories.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Category			"Successfully retrieved categories"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/categories [get]
func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.productService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Creates a new product with an initial inventory row.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product Details"
//	@Success		201		{object}	models.Product				"Successfully created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"SKU already exists"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productID", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//	@Summary		Get a product by ID
//	@Description	Retrieves a product with its category. The lookup is recorded in the product view log.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id		path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Param			user_id	query		string					false	"Viewer's user ID for the behavioral log"	Format(uuid)
//	@Success		200		{object}	models.Product			"Successfully retrieved product"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.String("productID", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		h.activityService.RecordView(r.Context(), id, optionalUserID(r))

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//	@Summary		List products with pagination
//	@Description	Retrieves a paginated product listing, optionally filtered by category.
//	@Tags			Catalog
//	@Produce		json
//	@Param			page		query		int												false	"Page number for pagination (default: 1)"			minimum(1)
//	@Param			pageSize	query		int												false	"Number of items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Param			category_id	query		string											false	"Filter by category (UUID)"							Format(uuid)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Successfully retrieved list of products"
//	@Failure		400			{object}	response.ErrorResponse							"Invalid category ID format"
//	@Failure		500			{object}	response.ErrorResponse							"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := parsePagination(r)

		var categoryID *uuid.UUID

		if raw := r.URL.Query().Get("category_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("Invalid category id filter", slog.String("value", raw))
				response.Error(w, errors.AddValidationError("category_id", "must be a valid UUID"))
				return
			}

			categoryID = &id
		}

		products, total, err := h.productService.ListProducts(r.Context(), categoryID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// SearchProducts godoc
//	@Summary		Search products
//	@Description	Case-insensitive substring search over product names and descriptions. Queries are recorded in the search log.
//	@Tags			Catalog
//	@Produce		json
//	@Param			q			query		string											true	"Search query"
//	@Param			page		query		int												false	"Page number for pagination (default: 1)"			minimum(1)
//	@Param			pageSize	query		int												false	"Number of items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Param			user_id		query		string											false	"Searcher's user ID for the behavioral log"			Format(uuid)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Successfully retrieved matching products"
//	@Failure		400			{object}	response.ErrorResponse							"Missing search query"
//	@Failure		500			{object}	response.ErrorResponse							"Internal server error"
//	@Router			/products/search [get]
func (h *ProductHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			logger.Warn("Missing search query")
			response.Error(w, errors.AddValidationError("q", "cannot be empty"))
			return
		}

		page, pageSize := parsePagination(r)

		products, total, err := h.productService.SearchProducts(r.Context(), query, optionalUserID(r), page, pageSize)
		if err != nil {
			logger.Error("Failed to search products", slog.String("query", query), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products searched successfully", slog.String("query", query), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Description	Updates fields of a product. Only provided fields change; a price change invalidates the cached copy.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to update"
//	@Success		200		{object}	models.Product				"Successfully updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/products/{id} [patch]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("productID", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.String("productID", id.String()))
		response.Success(w, http.StatusOK, product)
	}
}
