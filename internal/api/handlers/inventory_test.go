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

// TestGetInventory tests the GetInventory handler
func TestGetInventory(t *testing.T) {
	mockInventoryService := new(mocks.InventoryService)
	inventoryHandler := handlers.NewInventoryHandler(mockInventoryService)
	productID := uuid.New()

	t.Run("Success - Inventory Retrieved", func(t *testing.T) {
		// Arrange
		expectedInventory := &models.Inventory{
			ProductID: productID,
			Stock:     120,
			Reserved:  5,
			UpdatedAt: time.Now(),
		}

		mockInventoryService.On("GetInventory", mock.Anything, productID).Return(expectedInventory, nil).Once()

		pathParams := map[string]string{"id": productID.String()}
		req := testutils.CreateTestRequest(http.MethodGet, "/products/"+productID.String()+"/inventory", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.GetInventory()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respInventory models.Inventory
		err = json.Unmarshal(dataBytes, &respInventory)
		assert.NoError(t, err)
		assert.Equal(t, productID, respInventory.ProductID)
		assert.Equal(t, 120, respInventory.Stock)
		assert.Equal(t, 5, respInventory.Reserved)

		mockInventoryService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Product ID", func(t *testing.T) {
		// Arrange
		mockInventoryService := new(mocks.InventoryService)
		inventoryHandler := handlers.NewInventoryHandler(mockInventoryService)

		pathParams := map[string]string{"id": "not-a-uuid"}
		req := testutils.CreateTestRequest(http.MethodGet, "/products/not-a-uuid/inventory", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.GetInventory()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockInventoryService.AssertNotCalled(t, "GetInventory", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Inventory Not Found", func(t *testing.T) {
		// Arrange
		missingID := uuid.New()

		mockInventoryService.On("GetInventory", mock.Anything, missingID).
			Return(nil, appErrors.NotFoundError("Inventory not found")).Once()

		pathParams := map[string]string{"id": missingID.String()}
		req := testutils.CreateTestRequest(http.MethodGet, "/products/"+missingID.String()+"/inventory", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.GetInventory()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockInventoryService.AssertExpectations(t)
	})
}

// TestReserve tests the Reserve handler
func TestReserve(t *testing.T) {
	mockInventoryService := new(mocks.InventoryService)
	inventoryHandler := handlers.NewInventoryHandler(mockInventoryService)
	productID := uuid.New()

	t.Run("Success - Stock Reserved", func(t *testing.T) {
		// Arrange
		adjustReq := models.AdjustInventoryRequest{Quantity: 3}
		expectedInventory := &models.Inventory{
			ProductID: productID,
			Stock:     120,
			Reserved:  3,
			UpdatedAt: time.Now(),
		}

		mockInventoryService.On("Reserve", mock.Anything, productID, 3).Return(expectedInventory, nil).Once()

		bodyBytes, _ := json.Marshal(adjustReq)
		pathParams := map[string]string{"id": productID.String()}
		req := testutils.CreateTestRequest(http.MethodPost, "/products/"+productID.String()+"/inventory/reserve", bytes.NewReader(bodyBytes), pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.Reserve()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockInventoryService.AssertExpectations(t)
	})

	t.Run("Failure - Non-Positive Quantity", func(t *testing.T) {
		// Arrange -> quantity must be > 0
		mockInventoryService := new(mocks.InventoryService)
		inventoryHandler := handlers.NewInventoryHandler(mockInventoryService)

		body := []byte(`{"quantity": 0}`)
		pathParams := map[string]string{"id": productID.String()}
		req := testutils.CreateTestRequest(http.MethodPost, "/products/"+productID.String()+"/inventory/reserve", bytes.NewReader(body), pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.Reserve()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockInventoryService.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		adjustReq := models.AdjustInventoryRequest{Quantity: 500}

		mockInventoryService.On("Reserve", mock.Anything, productID, 500).
			Return(nil, appErrors.ConstraintViolationError("Not enough unreserved stock")).Once()

		bodyBytes, _ := json.Marshal(adjustReq)
		pathParams := map[string]string{"id": productID.String()}
		req := testutils.CreateTestRequest(http.MethodPost, "/products/"+productID.String()+"/inventory/reserve", bytes.NewReader(bodyBytes), pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.Reserve()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		mockInventoryService.AssertExpectations(t)
	})
}

// TestReapplyAdjustments tests the ReapplyAdjustments handler
func TestReapplyAdjustments(t *testing.T) {
	mockInventoryService := new(mocks.InventoryService)
	inventoryHandler := handlers.NewInventoryHandler(mockInventoryService)
	orderID := uuid.New()

	t.Run("Success - Adjustments Applied", func(t *testing.T) {
		// Arrange
		mockInventoryService.On("ReapplyOrderAdjustments", mock.Anything, orderID).Return(2, nil).Once()

		pathParams := map[string]string{"id": orderID.String()}
		req := testutils.CreateTestRequest(http.MethodPost, "/orders/"+orderID.String()+"/inventory-adjustments", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.ReapplyAdjustments()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var result map[string]int
		err = json.Unmarshal(dataBytes, &result)
		assert.NoError(t, err)
		assert.Equal(t, 2, result["applied"])

		mockInventoryService.AssertExpectations(t)
	})

	t.Run("Success - Retry Applies Nothing", func(t *testing.T) {
		// Arrange -> every item already in the ledger
		mockInventoryService.On("ReapplyOrderAdjustments", mock.Anything, orderID).Return(0, nil).Once()

		pathParams := map[string]string{"id": orderID.String()}
		req := testutils.CreateTestRequest(http.MethodPost, "/orders/"+orderID.String()+"/inventory-adjustments", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.ReapplyAdjustments()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var result map[string]int
		err = json.Unmarshal(dataBytes, &result)
		assert.NoError(t, err)
		assert.Equal(t, 0, result["applied"])

		mockInventoryService.AssertExpectations(t)
	})

	t.Run("Failure - Order Not Found", func(t *testing.T) {
		// Arrange
		missingID := uuid.New()

		mockInventoryService.On("ReapplyOrderAdjustments", mock.Anything, missingID).
			Return(0, appErrors.NotFoundError("Order not found")).Once()

		pathParams := map[string]string{"id": missingID.String()}
		req := testutils.CreateTestRequest(http.MethodPost, "/orders/"+missingID.String()+"/inventory-adjustments", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := inventoryHandler.ReapplyAdjustments()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockInventoryService.AssertExpectations(t)
	})
}
