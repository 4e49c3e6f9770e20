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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Check out a cart
//	@Description	Atomically converts the cart into a pending order: snapshots item prices, decrements inventory, and empties the cart. Concurrent checkouts of the same cart produce exactly one order.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Cart and owner"
//	@Success		201			{object}	models.Order			"Successfully created order"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		404			{object}	response.ErrorResponse	"Cart not found for this user"
//	@Failure		409			{object}	response.ErrorResponse	"Concurrent checkout in progress"
//	@Failure		422			{object}	response.ErrorResponse	"Cart is empty"
//	@Failure		429			{object}	response.ErrorResponse	"Too many checkout attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		logger = logger.With(
			slog.String("cartID", req.CartID.String()),
			slog.String("userID", req.UserID.String()))

		order, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout succeeded",
			slog.String("orderID", order.ID.String()),
			slog.Float64("totalAmount", order.TotalAmount),
			slog.Int("items", len(order.Items)))
		response.Success(w, http.StatusCreated, order)
	}
}
