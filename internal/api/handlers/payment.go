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

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// CreatePayment godoc
//	@Summary		Record a payment for an order
//	@Description	Creates a payment record against the order. An omitted amount defaults to the order total plus shipping.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order ID (UUID)"	Format(uuid)
//	@Param			payment	body		models.CreatePaymentRequest	true	"Payment Details"
//	@Success		201		{object}	models.Payment				"Successfully recorded payment"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/orders/{id}/payments [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create payment input")
			return
		}

		payment, err := h.paymentService.CreatePayment(r.Context(), orderID, &req)
		if err != nil {
			logger.Error("Failed to record payment", slog.String("orderID", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment recorded successfully", slog.String("paymentID", payment.ID.String()))
		response.Success(w, http.StatusCreated, payment)
	}
}

// ListPayments godoc
//	@Summary		List payments for an order
//	@Description	Retrieves all payment records against the order.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{array}		models.Payment			"Successfully retrieved payments"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/orders/{id}/payments [get]
func (h *PaymentHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		payments, err := h.paymentService.ListPaymentsByOrder(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to list payments", slog.String("orderID", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payments)
	}
}
