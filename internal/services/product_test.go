package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	cacheMocks "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/cache/mocks"
	appErrors "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories/mocks"
	service "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services"
	serviceMocks "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_CreateCategory(t *testing.T) {

	mockProductRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)
	mockActivity := new(serviceMocks.ActivityService)

	productService := service.NewProductService(mockProductRepo, mockCache, mockActivity)

	t.Run("Success - Markup Stripped From Name", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		req := &models.CreateCategoryRequest{
			Name:        "<script>alert(1)</script>Electronics",
			Description: "Phones, laptops and accessories",
		}

		var created *models.Category

		mockProductRepo.On("CreateCategory", ctx, mock.AnythingOfType("*models.Category")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Category)
			}).
			Return(nil).Once()
		mockCache.On("Delete", ctx, "category:all").Return(nil).Once()

		// Act
		category, err := productService.CreateCategory(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, "Electronics", created.Name)
		assert.Equal(t, req.Description, created.Description)

		mockProductRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Name", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		req := &models.CreateCategoryRequest{Name: "Electronics"}

		mockProductRepo.On("CreateCategory", ctx, mock.AnythingOfType("*models.Category")).
			Return(&pq.Error{Code: "23505", Constraint: "categories_name_key"}).Once()

		// Act
		category, err := productService.CreateCategory(ctx, req)

		// Assert
		assert.Nil(t, category)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)

		mockProductRepo.AssertExpectations(t)
	})
}

func TestProductService_ListCategories(t *testing.T) {

	mockProductRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)
	mockActivity := new(serviceMocks.ActivityService)

	productService := service.NewProductService(mockProductRepo, mockCache, mockActivity)

	t.Run("Success - Cache Hit Skips The Database", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		cached := []models.Category{{ID: uuid.New(), Name: "Electronics"}}

		mockCache.On("Get", ctx, "category:all", mock.Anything).
			Run(func(args mock.Arguments) {
				dest := args.Get(2).(*[]models.Category)
				*dest = cached
			}).
			Return(true, nil).Once()

		// Act
		categories, err := productService.ListCategories(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, cached, categories)

		mockCache.AssertExpectations(t)
		mockProductRepo.AssertNotCalled(t, "ListCategories", ctx)
	})

	t.Run("Success - Cache Miss Falls Through And Stores", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		stored := []models.Category{
			{ID: uuid.New(), Name: "Electronics"},
			{ID: uuid.New(), Name: "Books"},
		}

		mockCache.On("Get", ctx, "category:all", mock.Anything).Return(false, nil).Once()
		mockProductRepo.On("ListCategories", ctx).Return(stored, nil).Once()
		mockCache.On("Set", ctx, "category:all", mock.Anything, time.Duration(0)).Return(nil).Once()

		// Act
		categories, err := productService.ListCategories(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, categories, 2)

		mockCache.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {

		// Arrange
		ctx := context.Background()

		mockCache.On("Get", ctx, "category:all", mock.Anything).Return(false, nil).Once()
		mockProductRepo.On("ListCategories", ctx).Return(nil, errors.New("connection refused")).Once()

		// Act
		categories, err := productService.ListCategories(ctx)

		// Assert
		assert.Nil(t, categories)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)

		mockProductRepo.AssertExpectations(t)
	})
}

func TestProductService_CreateProduct(t *testing.T) {

	mockProductRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)
	mockActivity := new(serviceMocks.ActivityService)

	productService := service.NewProductService(mockProductRepo, mockCache, mockActivity)

	t.Run("Success - New Product Starts Active", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		req := &models.CreateProductRequest{
			CategoryID:   uuid.New(),
			SKU:          "SKU-LTP-001",
			Name:         "Laptop Pro 16",
			Description:  "16 inch, 32GB RAM",
			Price:        79999.00,
			InitialStock: 25,
		}

		var created *models.Product

		mockProductRepo.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product"), 25).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Product)
			}).
			Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, models.ProductStatusActive, created.Status)
		assert.Equal(t, req.SKU, created.SKU)
		assert.Equal(t, 79999.00, created.Price)

		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		req := &models.CreateProductRequest{
			CategoryID:   uuid.New(),
			SKU:          "SKU-LTP-001",
			Name:         "Laptop Pro 16",
			Price:        79999.00,
			InitialStock: 5,
		}

		mockProductRepo.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product"), 5).
			Return(&pq.Error{Code: "23505", Constraint: "products_sku_key"}).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)

		mockProductRepo.AssertExpectations(t)
	})
}

func TestProductService_GetProductByID(t *testing.T) {

	mockProductRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)
	mockActivity := new(serviceMocks.ActivityService)

	productService := service.NewProductService(mockProductRepo, mockCache, mockActivity)

	t.Run("Success - Cache Hit Skips The Database", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		productID := uuid.New()

		cached := models.Product{ID: productID, Name: "Wireless Headphones", Price: 2999.00}

		mockCache.On("Get", ctx, "product:"+productID.String(), mock.Anything).
			Run(func(args mock.Arguments) {
				dest := args.Get(2).(*models.Product)
				*dest = cached
			}).
			Return(true, nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, productID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, cached.Name, product.Name)

		mockCache.AssertExpectations(t)
		mockProductRepo.AssertNotCalled(t, "GetProductByID", ctx, productID)
	})

	t.Run("Success - Cache Miss Falls Through And Stores", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		productID := uuid.New()

		stored := &models.Product{ID: productID, Name: "Wireless Headphones", Price: 2999.00}

		mockCache.On("Get", ctx, "product:"+productID.String(), mock.Anything).Return(false, nil).Once()
		mockProductRepo.On("GetProductByID", ctx, productID).Return(stored, nil).Once()
		mockCache.On("Set", ctx, "product:"+productID.String(), stored, time.Duration(0)).Return(nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, productID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, product.ID)

		mockCache.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		productID := uuid.New()

		mockCache.On("Get", ctx, "product:"+productID.String(), mock.Anything).Return(false, nil).Once()
		mockProductRepo.On("GetProductByID", ctx, productID).Return(nil, sql.ErrNoRows).Once()

		// Act
		product, err := productService.GetProductByID(ctx, productID)

		// Assert
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

		mockProductRepo.AssertExpectations(t)
	})
}

func TestProductService_SearchProducts(t *testing.T) {

	mockProductRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)
	mockActivity := new(serviceMocks.ActivityService)

	productService := service.NewProductService(mockProductRepo, mockCache, mockActivity)

	t.Run("Success - Search Is Recorded In The Behavioral Log", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		userID := uuid.New()

		results := []models.Product{
			{ID: uuid.New(), Name: "Laptop Pro 16", Price: 79999.00},
			{ID: uuid.New(), Name: "Laptop Air 13", Price: 59999.00},
		}

		mockProductRepo.On("SearchProducts", ctx, "laptop", 1, 10).Return(results, 7, nil).Once()
		mockActivity.On("RecordSearch", ctx, "laptop", &userID, 7).Return().Once()

		// Act
		products, total, err := productService.SearchProducts(ctx, "laptop", &userID, 1, 10)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, 7, total)

		mockProductRepo.AssertExpectations(t)
		mockActivity.AssertExpectations(t)
	})

	t.Run("Success - Anonymous Search With No Matches", func(t *testing.T) {

		// Arrange
		ctx := context.Background()

		mockProductRepo.On("SearchProducts", ctx, "zune", 1, 10).Return([]models.Product{}, 0, nil).Once()
		mockActivity.On("RecordSearch", ctx, "zune", (*uuid.UUID)(nil), 0).Return().Once()

		// Act
		products, total, err := productService.SearchProducts(ctx, "zune", nil, 1, 10)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, products)
		assert.Zero(t, total)

		mockProductRepo.AssertExpectations(t)
		mockActivity.AssertExpectations(t)
	})

	t.Run("Success - Markup Stripped From Recorded Query", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		query := "<script>alert(1)</script>laptop"

		mockProductRepo.On("SearchProducts", ctx, query, 1, 10).Return([]models.Product{}, 0, nil).Once()
		mockActivity.On("RecordSearch", ctx, "laptop", (*uuid.UUID)(nil), 0).Return().Once()

		// Act
		_, _, err := productService.SearchProducts(ctx, query, nil, 1, 10)

		// Assert
		assert.NoError(t, err)

		mockProductRepo.AssertExpectations(t)
		mockActivity.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {

		// Arrange
		ctx := context.Background()

		mockProductRepo.On("SearchProducts", ctx, "laptop", 1, 10).Return(nil, 0, errors.New("connection refused")).Once()

		// Act
		products, total, err := productService.SearchProducts(ctx, "laptop", nil, 1, 10)

		// Assert
		assert.Nil(t, products)
		assert.Zero(t, total)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)

		mockProductRepo.AssertExpectations(t)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {

	mockProductRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)
	mockActivity := new(serviceMocks.ActivityService)

	productService := service.NewProductService(mockProductRepo, mockCache, mockActivity)

	t.Run("Success - Price Change Evicts The Cached Product", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		productID := uuid.New()

		existing := &models.Product{
			ID:     productID,
			Name:   "Laptop Pro 16",
			Price:  79999.00,
			Status: models.ProductStatusActive,
		}

		newPrice := 74999.00
		newName := "Laptop Pro 16 <b>(2026)</b>"
		req := &models.UpdateProductRequest{Name: &newName, Price: &newPrice}

		var updated *models.Product

		mockProductRepo.On("GetProductByID", ctx, productID).Return(existing, nil).Once()
		mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("*models.Product")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*models.Product)
			}).
			Return(nil).Once()
		mockCache.On("Delete", ctx, "product:"+productID.String()).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 74999.00, product.Price)
		assert.Equal(t, 74999.00, updated.Price)
		assert.Equal(t, "Laptop Pro 16 <b>(2026)</b>", updated.Name, "UGC policy keeps simple formatting tags")
		assert.Equal(t, models.ProductStatusActive, updated.Status, "Fields absent from the request stay as they were")

		mockProductRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {

		// Arrange
		ctx := context.Background()
		productID := uuid.New()

		mockProductRepo.On("GetProductByID", ctx, productID).Return(nil, sql.ErrNoRows).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, &models.UpdateProductRequest{})

		// Assert
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

		mockProductRepo.AssertExpectations(t)
		mockProductRepo.AssertNotCalled(t, "UpdateProduct")
	})
}
