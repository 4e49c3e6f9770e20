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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// CreateCart godoc
//	@Summary		Create a cart
//	@Description	Creates a shopping cart for the user, or returns the user's existing one.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			cart	body		models.CreateCartRequest	true	"Cart owner"
//	@Success		201		{object}	models.Cart					"Cart ready for use"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/carts [post]
func (h *CartHandler) CreateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create cart input")
			return
		}

		cart, err := h.cartService.CreateCart(r.Context(), req.UserID)
		if err != nil {
			logger.Error("Failed to create cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart ready", slog.String("cartID", cart.ID.String()))
		response.Success(w, http.StatusCreated, cart)
	}
}

// GetCart godoc
//	@Summary		Get a cart by ID
//	@Description	Retrieves the cart, its items, and the running total.
//	@Tags			Carts
//	@Produce		json
//	@Param			id	path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Cart				"Successfully retrieved cart"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid cart ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Cart not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/carts/{id} [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("cartID", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add an item to a cart
//	@Description	Adds a product at its current catalog price. Adding a product already in the cart increases its quantity.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Param			item	body		models.AddItemRequest	true	"Product and quantity"
//	@Success		200		{object}	models.Cart				"Cart after the addition"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or inactive product"
//	@Failure		404		{object}	response.ErrorResponse	"Cart or product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/carts/{id}/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), cartID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart",
				slog.String("cartID", cartID.String()),
				slog.String("productID", req.ProductID.String()),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("cartID", cartID.String()), slog.String("productID", req.ProductID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateItemQuantity godoc
//	@Summary		Update an item's quantity
//	@Description	Sets the quantity of a cart line. Quantity zero removes the line.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Cart ID (UUID)"	Format(uuid)
//	@Param			productID	path		string							true	"Product ID (UUID)"	Format(uuid)
//	@Param			item		body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200			{object}	models.Cart						"Cart after the update"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Cart or item not found"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Router			/carts/{id}/items/{productID} [patch]
func (h *CartHandler) UpdateItemQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		productID, err := utils.ParseID(r, "productID")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), cartID, productID, &req)
		if err != nil {
			logger.Error("Failed to update item quantity",
				slog.String("cartID", cartID.String()),
				slog.String("productID", productID.String()),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item quantity updated", slog.String("cartID", cartID.String()), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove an item from a cart
//	@Description	Deletes one product line from the cart.
//	@Tags			Carts
//	@Produce		json
//	@Param			id			path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Param			productID	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200			{object}	models.Cart				"Cart after the removal"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid ID format"
//	@Failure		404			{object}	response.ErrorResponse	"Cart or item not found"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/carts/{id}/items/{productID} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		productID, err := utils.ParseID(r, "productID")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), cartID, productID)
		if err != nil {
			logger.Error("Failed to remove item from cart",
				slog.String("cartID", cartID.String()),
				slog.String("productID", productID.String()),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item removed from cart", slog.String("cartID", cartID.String()), slog.String("productID", productID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}
