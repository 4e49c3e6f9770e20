package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	service "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// Register godoc
//	@Summary		Register a new user
//	@Description	Creates a new user account with the provided details.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterUserRequest	true	"User Registration Details"
//	@Success		201		{object}	models.User					"Successfully registered user"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"Email already registered"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/users [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to register user", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered successfully", slog.String("userID", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// GetUser godoc
//	@Summary		Get a user by ID
//	@Description	Retrieves profile details for a specific user.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"User ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.User				"Successfully retrieved user"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid user ID format"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/{id} [get]
func (h *UserHandler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get user", slog.String("userID", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User retrieved successfully", slog.String("userID", id.String()))
		response.Success(w, http.StatusOK, user)
	}
}

// UpdateUser godoc
//	@Summary		Update a user
//	@Description	Updates profile fields of a specific user. Only provided fields change.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User ID (UUID)"	Format(uuid)
//	@Param			user	body		models.UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	models.User				"Successfully updated user"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"User not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/{id} [patch]
func (h *UserHandler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update user input")
			return
		}

		user, err := h.userService.UpdateUser(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update user", slog.String("userID", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User updated successfully", slog.String("userID", id.String()))
		response.Success(w, http.StatusOK, user)
	}
}

// CreateAddress godoc
//	@Summary		Add an address for a user
//	@Description	Creates a new address on the user's address book. Marking it default clears the previous default.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID (UUID)"	Format(uuid)
//	@Param			address	body		models.CreateAddressRequest	true	"Address Details"
//	@Success		201		{object}	models.Address				"Successfully created address"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"User not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/users/{id}/addresses [post]
func (h *UserHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create address input")
			return
		}

		address, err := h.userService.CreateAddress(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create address", slog.String("userID", userID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address created successfully", slog.String("addressID", address.ID.String()))
		response.Success(w, http.StatusCreated, address)
	}
}

// ListAddresses godoc
//	@Summary		List a user's addresses
//	@Description	Retrieves all addresses on the user's address book, default first.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"User ID (UUID)"	Format(uuid)
//	@Success		200	{array}		models.Address			"Successfully retrieved addresses"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid user ID format"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/{id}/addresses [get]
func (h *UserHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		addresses, err := h.userService.ListAddresses(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.String("userID", userID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Addresses listed successfully", slog.Int("count", len(addresses)))
		response.Success(w, http.StatusOK, addresses)
	}
}

// UpdateAddress godoc
//	@Summary		Update an address
//	@Description	Updates fields of one address belonging to the user.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"User ID (UUID)"	Format(uuid)
//	@Param			addressID	path		string						true	"Address ID (UUID)"	Format(uuid)
//	@Param			address		body		models.UpdateAddressRequest	true	"Fields to update"
//	@Success		200			{object}	models.Address				"Successfully updated address"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		404			{object}	response.ErrorResponse		"Address not found"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/users/{id}/addresses/{addressID} [patch]
func (h *UserHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		addressID, err := utils.ParseID(r, "addressID")
		if err != nil {
			logger.Warn("Invalid address id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update address input")
			return
		}

		address, err := h.userService.UpdateAddress(r.Context(), userID, addressID, &req)
		if err != nil {
			logger.Error("Failed to update address", slog.String("addressID", addressID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address updated successfully", slog.String("addressID", addressID.String()))
		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//	@Summary		Delete an address
//	@Description	Removes one address from the user's address book.
//	@Tags			Users
//	@Produce		json
//	@Param			id			path	string	true	"User ID (UUID)"	Format(uuid)
//	@Param			addressID	path	string	true	"Address ID (UUID)"	Format(uuid)
//	@Success		204			"Address deleted"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid ID format"
//	@Failure		404			{object}	response.ErrorResponse	"Address not found"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/{id}/addresses/{addressID} [delete]
func (h *UserHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		addressID, err := utils.ParseID(r, "addressID")
		if err != nil {
			logger.Warn("Invalid address id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.userService.DeleteAddress(r.Context(), userID, addressID); err != nil {
			logger.Error("Failed to delete address", slog.String("addressID", addressID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address deleted successfully", slog.String("addressID", addressID.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}
