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

// TestRegister tests the Register handler
func TestRegister(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)

	t.Run("Success - User Registered", func(t *testing.T) {
		// Arrange
		registerReq := models.RegisterUserRequest{
			Email:     "ananya@example.com",
			Password:  "correct-horse-battery",
			FirstName: "Ananya",
			LastName:  "Pillai",
		}
		expectedUser := &models.User{
			ID:        uuid.New(),
			Email:     registerReq.Email,
			FirstName: registerReq.FirstName,
			LastName:  registerReq.LastName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		// Mock Call
		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterUserRequest")).
			Return(expectedUser, nil).Once()

		bodyBytes, _ := json.Marshal(registerReq)
		req := testutils.CreateTestRequest(http.MethodPost, "/users", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Register()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respUser models.User
		err = json.Unmarshal(dataBytes, &respUser)
		assert.NoError(t, err)
		assert.Equal(t, expectedUser.Email, respUser.Email)
		assert.Empty(t, respUser.Password)

		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		body := []byte(`{"email": "not-an-email", "password": "correct-horse-battery", "first_name": "Ananya", "last_name": "Pillai"}`)
		req := testutils.CreateTestRequest(http.MethodPost, "/users", bytes.NewReader(body), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Register()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		registerReq := models.RegisterUserRequest{
			Email:     "ananya@example.com",
			Password:  "correct-horse-battery",
			FirstName: "Ananya",
			LastName:  "Pillai",
		}
		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterUserRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email is already registered")).Once()

		bodyBytes, _ := json.Marshal(registerReq)
		req := testutils.CreateTestRequest(http.MethodPost, "/users", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Register()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, resp.Error.Code)

		mockUserService.AssertExpectations(t)
	})
}

// TestGetUser tests the GetUser handler
func TestGetUser(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success - User Retrieved", func(t *testing.T) {
		// Arrange
		expectedUser := &models.User{
			ID:        userID,
			Email:     "ananya@example.com",
			FirstName: "Ananya",
			LastName:  "Pillai",
		}

		mockUserService.On("GetUserByID", mock.Anything, userID).Return(expectedUser, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/users/"+userID.String(), nil, map[string]string{"id": userID.String()})
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.GetUser()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid User ID", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		req := testutils.CreateTestRequest(http.MethodGet, "/users/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.GetUser()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - User Not Found", func(t *testing.T) {
		// Arrange
		missingID := uuid.New()
		mockUserService.On("GetUserByID", mock.Anything, missingID).
			Return(nil, appErrors.NotFoundError("User not found")).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/users/"+missingID.String(), nil, map[string]string{"id": missingID.String()})
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.GetUser()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockUserService.AssertExpectations(t)
	})
}

// TestCreateAddress tests the CreateAddress handler
func TestCreateAddress(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success - Address Created", func(t *testing.T) {
		// Arrange
		createReq := models.CreateAddressRequest{
			Line1:      "14 MG Road",
			City:       "Bengaluru",
			PostalCode: "560001",
			Country:    "IN",
			IsDefault:  true,
		}
		expectedAddress := &models.Address{
			ID:         uuid.New(),
			UserID:     userID,
			Line1:      createReq.Line1,
			City:       createReq.City,
			PostalCode: createReq.PostalCode,
			Country:    createReq.Country,
			IsDefault:  true,
		}

		mockUserService.On("CreateAddress", mock.Anything, userID, mock.AnythingOfType("*models.CreateAddressRequest")).
			Return(expectedAddress, nil).Once()

		bodyBytes, _ := json.Marshal(createReq)
		req := testutils.CreateTestRequest(http.MethodPost, "/users/"+userID.String()+"/addresses", bytes.NewReader(bodyBytes), map[string]string{"id": userID.String()})
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.CreateAddress()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Country Code", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		body := []byte(`{"line1": "14 MG Road", "city": "Bengaluru", "postal_code": "560001", "country": "India"}`)
		req := testutils.CreateTestRequest(http.MethodPost, "/users/"+userID.String()+"/addresses", bytes.NewReader(body), map[string]string{"id": userID.String()})
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.CreateAddress()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestListAddresses tests the ListAddresses handler
func TestListAddresses(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success - Default Address First", func(t *testing.T) {
		// Arrange
		addresses := []models.Address{
			{ID: uuid.New(), UserID: userID, Line1: "14 MG Road", IsDefault: true},
			{ID: uuid.New(), UserID: userID, Line1: "2 Residency Road", IsDefault: false},
		}

		mockUserService.On("ListAddresses", mock.Anything, userID).Return(addresses, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/users/"+userID.String()+"/addresses", nil, map[string]string{"id": userID.String()})
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.ListAddresses()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respAddresses []models.Address
		err = json.Unmarshal(dataBytes, &respAddresses)
		assert.NoError(t, err)
		assert.Len(t, respAddresses, 2)
		assert.True(t, respAddresses[0].IsDefault)

		mockUserService.AssertExpectations(t)
	})
}
