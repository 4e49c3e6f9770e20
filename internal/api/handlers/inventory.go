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

type InventoryHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, validator: validator.New()}
}

// GetInventory godoc
//	@Summary		Get inventory for a product
//	@Description	Retrieves the stock and reserved counters of a product.
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Inventory		"Successfully retrieved inventory"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Inventory not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id}/inventory [get]
func (h *InventoryHandler) GetInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		inventory, err := h.inventoryService.GetInventory(r.Context(), productID)
		if err != nil {
			logger.Error("Failed to get inventory", slog.String("productID", productID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, inventory)
	}
}

// Restock godoc
//	@Summary		Restock a product
//	@Description	Adds the given quantity to the product's stock counter.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Product ID (UUID)"	Format(uuid)
//	@Param			adjustment	body		models.AdjustInventoryRequest	true	"Quantity to add"
//	@Success		200			{object}	models.Inventory				"Updated inventory"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Inventory not found"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Router			/products/{id}/inventory/restock [post]
func (h *InventoryHandler) Restock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AdjustInventoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid restock input")
			return
		}

		inventory, err := h.inventoryService.Restock(r.Context(), productID, req.Quantity)
		if err != nil {
			logger.Error("Failed to restock", slog.String("productID", productID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product restocked", slog.String("productID", productID.String()), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, inventory)
	}
}

// Reserve godoc
//	@Summary		Reserve stock for a product
//	@Description	Moves the given quantity into the reserved counter when enough unreserved stock exists.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Product ID (UUID)"	Format(uuid)
//	@Param			adjustment	body		models.AdjustInventoryRequest	true	"Quantity to reserve"
//	@Success		200			{object}	models.Inventory				"Updated inventory"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Inventory not found"
//	@Failure		409			{object}	response.ErrorResponse			"Not enough unreserved stock"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Router			/products/{id}/inventory/reserve [post]
func (h *InventoryHandler) Reserve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AdjustInventoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid reserve input")
			return
		}

		inventory, err := h.inventoryService.Reserve(r.Context(), productID, req.Quantity)
		if err != nil {
			logger.Error("Failed to reserve stock", slog.String("productID", productID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Stock reserved", slog.String("productID", productID.String()), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, inventory)
	}
}

// Release godoc
//	@Summary		Release reserved stock
//	@Description	Returns the given quantity from the reserved counter, flooring at zero.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Product ID (UUID)"	Format(uuid)
//	@Param			adjustment	body		models.AdjustInventoryRequest	true	"Quantity to release"
//	@Success		200			{object}	models.Inventory				"Updated inventory"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Inventory not found"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Router			/products/{id}/inventory/release [post]
func (h *InventoryHandler) Release() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AdjustInventoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid release input")
			return
		}

		inventory, err := h.inventoryService.Release(r.Context(), productID, req.Quantity)
		if err != nil {
			logger.Error("Failed to release stock", slog.String("productID", productID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Stock released", slog.String("productID", productID.String()), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, inventory)
	}
}

// ReapplyAdjustments godoc
//	@Summary		Reapply an order's inventory adjustments
//	@Description	Retries the inventory decrement for an order. Already-applied items are skipped, so the call is idempotent.
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	map[string]int			"Count of newly applied items"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/orders/{id}/inventory-adjustments [post]
func (h *InventoryHandler) ReapplyAdjustments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		applied, err := h.inventoryService.ReapplyOrderAdjustments(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to reapply adjustments", slog.String("orderID", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory adjustments reapplied", slog.String("orderID", orderID.String()), slog.Int("applied", applied))
		response.Success(w, http.StatusOK, map[string]int{"applied": applied})
	}
}
