package service

import (
	"context"
	"log/slog"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/cache"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]models.Product, int, error)
	SearchProducts(ctx context.Context, query string, userID *uuid.UUID, page, pageSize int) ([]models.Product, int, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
}

type productService struct {
	repo      repository.ProductRepository
	cache     cache.Cache
	activity  ActivityService
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, cacheStore cache.Cache, activity ActivityService) ProductService {
	return &productService{
		repo:      repo,
		cache:     cacheStore,
		activity:  activity,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *productService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{
		ID:          uuid.New(),
		Name:        s.sanitizer.Sanitize(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	_ = s.cache.Delete(ctx, cache.Key(cache.CategoryKeyPrefix, "all"))

	return category, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]models.Category, error) {

	key := cache.Key(cache.CategoryKeyPrefix, "all")

	var cached []models.Category
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if err := s.cache.Set(ctx, key, categories, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to cache categories", slog.Any("error", err))
	}

	return categories, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		SKU:         req.SKU,
		Name:        s.sanitizer.Sanitize(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Status:      models.ProductStatusActive,
	}

	if err := s.repo.CreateProduct(ctx, product, req.InitialStock); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, id.String())

	var cached models.Product
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to cache product", slog.String("productID", id.String()), slog.Any("error", err))
	}

	return product, nil
}

// page means "page number requested"
// pageSize means "number of products to be displayed per page"
func (s *productService) ListProducts(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]models.Product, int, error) {

	products, total, err := s.repo.ListProducts(ctx, categoryID, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

// SearchProducts also feeds the behavioral log; the write is fire-and-forget
// so a slow log pipeline never delays the search itself.
func (s *productService) SearchProducts(ctx context.Context, query string, userID *uuid.UUID, page, pageSize int) ([]models.Product, int, error) {

	products, total, err := s.repo.SearchProducts(ctx, query, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to search products").WithError(err)
	}

	if s.activity != nil {
		// The query is stored and re-served by the top-searches report.
		s.activity.RecordSearch(ctx, s.sanitizer.Sanitize(query), userID, total)
	}

	return products, total, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = s.sanitizer.Sanitize(*req.Name)
	}
	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	// Stale reads are fine for the TTL window; a price change must not be.
	_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id.String()))

	return product, nil
}
