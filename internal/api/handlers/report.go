package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	service "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils/response"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseLimit(r *http.Request) int {

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}

	return limit
}

// BestSellers godoc
//	@Summary		Best-selling products
//	@Description	Products ranked by total units sold across all orders.
//	@Tags			Reports
//	@Produce		json
//	@Param			limit	query		int						false	"Number of rows (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200		{array}		models.BestSellerRow	"Ranked products"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/reports/best-sellers [get]
func (h *ReportHandler) BestSellers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rows, err := h.reportService.BestSellers(r.Context(), parseLimit(r))
		if err != nil {
			logger.Error("Failed to compute best sellers", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}

// RevenueByCategory godoc
//	@Summary		Revenue per category
//	@Description	Revenue and order counts grouped by category. Only processing, shipped and delivered orders count.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{array}		models.CategoryRevenueRow	"Revenue rows"
//	@Failure		500	{object}	response.ErrorResponse		"Internal server error"
//	@Router			/reports/revenue-by-category [get]
func (h *ReportHandler) RevenueByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rows, err := h.reportService.RevenueByCategory(r.Context())
		if err != nil {
			logger.Error("Failed to compute revenue by category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}

// MonthlyRevenue godoc
//	@Summary		Monthly revenue
//	@Description	Revenue and order counts per calendar month over the last six months.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{array}		models.MonthlyRevenueRow	"Monthly rows, oldest first"
//	@Failure		500	{object}	response.ErrorResponse		"Internal server error"
//	@Router			/reports/monthly-revenue [get]
func (h *ReportHandler) MonthlyRevenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rows, err := h.reportService.MonthlyRevenue(r.Context())
		if err != nil {
			logger.Error("Failed to compute monthly revenue", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}

// AverageRatings godoc
//	@Summary		Average product ratings
//	@Description	Products ranked by average review rating.
//	@Tags			Reports
//	@Produce		json
//	@Param			limit	query		int						false	"Number of rows (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200		{array}		models.ProductRatingRow	"Ranked products"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/reports/average-ratings [get]
func (h *ReportHandler) AverageRatings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rows, err := h.reportService.AverageRatings(r.Context(), parseLimit(r))
		if err != nil {
			logger.Error("Failed to compute average ratings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}

// MostViewed godoc
//	@Summary		Most viewed products
//	@Description	Products ranked by view count over the last 30 days.
//	@Tags			Reports
//	@Produce		json
//	@Param			limit	query		int						false	"Number of rows (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200		{array}		models.MostViewedRow	"Ranked products"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/reports/most-viewed [get]
func (h *ReportHandler) MostViewed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rows, err := h.reportService.MostViewed(r.Context(), parseLimit(r))
		if err != nil {
			logger.Error("Failed to compute most viewed products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}

// TopSearches godoc
//	@Summary		Most searched queries
//	@Description	Search queries ranked by frequency over the last 30 days, folded to lower case.
//	@Tags			Reports
//	@Produce		json
//	@Param			limit	query		int						false	"Number of rows (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200		{array}		models.TopSearchRow		"Ranked queries"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/reports/top-searches [get]
func (h *ReportHandler) TopSearches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rows, err := h.reportService.TopSearches(r.Context(), parseLimit(r))
		if err != nil {
			logger.Error("Failed to compute top searches", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}
