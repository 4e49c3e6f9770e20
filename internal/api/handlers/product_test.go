package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/handlers"
	appErrors "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services/mocks"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/testutils"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestGetProduct tests the GetProduct handler
func TestGetProduct(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	mockActivityService := new(mocks.ActivityService)
	productHandler := handlers.NewProductHandler(mockProductService, mockActivityService)
	productID := uuid.New()

	t.Run("Success - Product Retrieved And View Recorded", func(t *testing.T) {
		// Arrange
		expectedProduct := &models.Product{
			ID:         productID,
			CategoryID: uuid.New(),
			SKU:        "PHN-NOVA-X1P",
			Name:       "Nova X1 Pro",
			Price:      79999.00,
			Status:     models.ProductStatusActive,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		// Mock Call
		mockProductService.On("GetProductByID", mock.Anything, productID).Return(expectedProduct, nil).Once()
		mockActivityService.On("RecordView", mock.Anything, productID, (*uuid.UUID)(nil)).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products/"+productID.String(), nil, map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.GetProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respProduct models.Product
		err = json.Unmarshal(dataBytes, &respProduct)
		assert.NoError(t, err)
		assert.Equal(t, expectedProduct.ID, respProduct.ID)
		assert.Equal(t, expectedProduct.SKU, respProduct.SKU)
		assert.Equal(t, 79999.00, respProduct.Price)

		mockProductService.AssertExpectations(t)
		mockActivityService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Product ID", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, new(mocks.ActivityService))

		req := testutils.CreateTestRequest(http.MethodGet, "/products/not-a-uuid", nil, map[string]string{"id": "not-a-uuid"})
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.GetProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		missingID := uuid.New()
		mockProductService.On("GetProductByID", mock.Anything, missingID).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products/"+missingID.String(), nil, map[string]string{"id": missingID.String()})
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.GetProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockActivityService.AssertNotCalled(t, "RecordView", mock.Anything, missingID, mock.Anything)
		mockProductService.AssertExpectations(t)
	})
}

// TestCreateProduct tests the CreateProduct handler
func TestCreateProduct(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	mockActivityService := new(mocks.ActivityService)
	productHandler := handlers.NewProductHandler(mockProductService, mockActivityService)
	categoryID := uuid.New()

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		createReq := models.CreateProductRequest{
			CategoryID:   categoryID,
			SKU:          "PHN-VELO-S24",
			Name:         "Velocity S24",
			Price:        69999.00,
			InitialStock: 40,
		}
		expectedProduct := &models.Product{
			ID:         uuid.New(),
			CategoryID: categoryID,
			SKU:        createReq.SKU,
			Name:       createReq.Name,
			Price:      createReq.Price,
			Status:     models.ProductStatusActive,
		}

		// Mock Call
		mockProductService.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(expectedProduct, nil).Once()

		bodyBytes, _ := json.Marshal(createReq)
		req := testutils.CreateTestRequest(http.MethodPost, "/products", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, new(mocks.ActivityService))

		body := []byte(`{"name": "Velocity S24"}`)
		req := testutils.CreateTestRequest(http.MethodPost, "/products", bytes.NewReader(body), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {
		// Arrange
		createReq := models.CreateProductRequest{
			CategoryID: categoryID,
			SKU:        "PHN-VELO-S24",
			Name:       "Velocity S24",
			Price:      69999.00,
		}
		mockProductService.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(nil, appErrors.DuplicateEntryError("Product with this SKU already exists")).Once()

		bodyBytes, _ := json.Marshal(createReq)
		req := testutils.CreateTestRequest(http.MethodPost, "/products", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		mockProductService.AssertExpectations(t)
	})
}

// TestSearchProducts tests the SearchProducts handler
func TestSearchProducts(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	mockActivityService := new(mocks.ActivityService)
	productHandler := handlers.NewProductHandler(mockProductService, mockActivityService)

	t.Run("Success - Results Returned", func(t *testing.T) {
		// Arrange
		matches := []models.Product{
			{ID: uuid.New(), Name: "Nova X1 Pro", SKU: "PHN-NOVA-X1P", Price: 79999.00},
		}

		mockProductService.On("SearchProducts", mock.Anything, "nova", (*uuid.UUID)(nil), 1, 10).
			Return(matches, 1, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products/search?q=nova", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.SearchProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var page models.PaginatedResponse
		err = json.Unmarshal(dataBytes, &page)
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)

		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Query", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, new(mocks.ActivityService))

		req := testutils.CreateTestRequest(http.MethodGet, "/products/search", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.SearchProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestListProducts tests the ListProducts handler
func TestListProducts(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	mockActivityService := new(mocks.ActivityService)
	productHandler := handlers.NewProductHandler(mockProductService, mockActivityService)

	t.Run("Success - Category Filter Applied", func(t *testing.T) {
		// Arrange
		categoryID := uuid.New()
		listing := []models.Product{
			{ID: uuid.New(), CategoryID: categoryID, Name: "Nova X1 Pro"},
			{ID: uuid.New(), CategoryID: categoryID, Name: "Velocity S24"},
		}

		mockProductService.On("ListProducts", mock.Anything, &categoryID, 1, 10).
			Return(listing, 2, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products?category_id="+categoryID.String(), nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.ListProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Category Filter", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, new(mocks.ActivityService))

		req := testutils.CreateTestRequest(http.MethodGet, "/products?category_id=banana", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := productHandler.ListProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
