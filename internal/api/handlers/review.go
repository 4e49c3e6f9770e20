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

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// SubmitReview godoc
//	@Summary		Submit a product review
//	@Description	Creates or replaces the user's review of the product. One review per user per product.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			review	body		models.CreateReviewRequest	true	"Rating and comment"
//	@Success		201		{object}	models.Review				"Review saved"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/products/{id}/reviews [post]
func (h *ReviewHandler) SubmitReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.reviewService.SubmitReview(r.Context(), productID, &req)
		if err != nil {
			logger.Error("Failed to save review",
				slog.String("productID", productID.String()),
				slog.String("userID", req.UserID.String()),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review saved successfully", slog.String("reviewID", review.ID.String()), slog.Int("rating", review.Rating))
		response.Success(w, http.StatusCreated, review)
	}
}

// ListReviews godoc
//	@Summary		List reviews for a product
//	@Description	Retrieves a paginated list of the product's reviews, newest first.
//	@Tags			Reviews
//	@Produce		json
//	@Param			id			path		string											true	"Product ID (UUID)"									Format(uuid)
//	@Param			page		query		int												false	"Page number for pagination (default: 1)"			minimum(1)
//	@Param			pageSize	query		int												false	"Number of items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Review}	"Successfully retrieved reviews"
//	@Failure		400			{object}	response.ErrorResponse							"Invalid product ID format"
//	@Failure		500			{object}	response.ErrorResponse							"Internal server error"
//	@Router			/products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		page, pageSize := parsePagination(r)

		reviews, total, err := h.reviewService.ListReviews(r.Context(), productID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list reviews", slog.String("productID", productID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     reviews,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
