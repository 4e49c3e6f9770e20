package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	service "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//	@Summary		List notifications
//	@Description	Returns sent and failed notifications, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"					minimum(1)
//	@Param			pageSize	query		int													false	"Number of items per page (default: 10)"	minimum(1)	maximum(50)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Notification}	"Paginated notifications"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := parsePagination(r)

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     notifications,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
