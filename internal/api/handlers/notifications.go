package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tdevries/vintedwatch/internal/store"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

const defaultNotificationLimit = 50

// NotificationsHandler exposes the per-watch notification ledger.
type NotificationsHandler struct {
	store store.Store
}

// NewNotificationsHandler creates a new NotificationsHandler.
func NewNotificationsHandler(s store.Store) *NotificationsHandler {
	return &NotificationsHandler{store: s}
}

// ListByWatch handles GET /api/v1/watches/:id/notifications, newest
// first.
func (h *NotificationsHandler) ListByWatch(c echo.Context) error {
	watchID := c.Param("id")

	limit := defaultNotificationLimit
	if s := c.QueryParam("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid limit: " + s,
			})
		}
		limit = v
	}

	notifications, err := h.store.ListNotificationsByWatch(c.Request().Context(), watchID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing notifications: " + err.Error(),
		})
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}

	return c.JSON(http.StatusOK, notifications)
}
