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

type ShipmentHandler struct {
	shipmentService service.ShipmentService
	validator       *validator.Validate
}

func NewShipmentHandler(shipmentService service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService, validator: validator.New()}
}

// CreateShipment godoc
//	@Summary		Create a shipment for an order
//	@Description	Creates a shipment record in the pending state.
//	@Tags			Shipments
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Order ID (UUID)"	Format(uuid)
//	@Param			shipment	body		models.CreateShipmentRequest	true	"Carrier and tracking details"
//	@Success		201			{object}	models.Shipment					"Successfully created shipment"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Order not found"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Router			/orders/{id}/shipments [post]
func (h *ShipmentHandler) CreateShipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.CreateShipmentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create shipment input")
			return
		}

		shipment, err := h.shipmentService.CreateShipment(r.Context(), orderID, &req)
		if err != nil {
			logger.Error("Failed to create shipment", slog.String("orderID", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shipment created successfully", slog.String("shipmentID", shipment.ID.String()))
		response.Success(w, http.StatusCreated, shipment)
	}
}

// ListShipments godoc
//	@Summary		List shipments for an order
//	@Description	Retrieves all shipments belonging to the order.
//	@Tags			Shipments
//	@Produce		json
//	@Param			id	path		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{array}		models.Shipment			"Successfully retrieved shipments"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/orders/{id}/shipments [get]
func (h *ShipmentHandler) ListShipments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		shipments, err := h.shipmentService.ListShipmentsByOrder(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to list shipments", slog.String("orderID", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shipments)
	}
}

// UpdateShipmentStatus godoc
//	@Summary		Update shipment status
//	@Description	Sets the shipment's status. Reaching shipped or delivered stamps the matching timestamp once.
//	@Tags			Shipments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Shipment ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateShipmentStatusRequest	true	"New Shipment Status"
//	@Success		200		{object}	models.Shipment						"Successfully updated shipment"
//	@Failure		400		{object}	response.ErrorResponse				"Invalid shipment ID format or invalid status value"
//	@Failure		404		{object}	response.ErrorResponse				"Shipment not found"
//	@Failure		500		{object}	response.ErrorResponse				"Internal server error"
//	@Router			/shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateShipmentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid shipment id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateShipmentStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update shipment status input")
			return
		}

		shipment, err := h.shipmentService.UpdateShipmentStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update shipment status", slog.String("shipmentID", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shipment status updated successfully", slog.String("shipmentID", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, shipment)
	}
}
