package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// SystemStateProvider queries aggregate system counts.
type SystemStateProvider interface {
	GetSystemState(ctx context.Context) (*domain.SystemState, error)
}

// SystemStateHandler handles GET /api/v1/system/state.
type SystemStateHandler struct {
	store SystemStateProvider
}

// NewSystemStateHandler creates a SystemStateHandler.
func NewSystemStateHandler(s SystemStateProvider) *SystemStateHandler {
	return &SystemStateHandler{store: s}
}

// Get returns current aggregate counts over watches, listings and
// notifications.
func (h *SystemStateHandler) Get(c echo.Context) error {
	state, err := h.store.GetSystemState(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching system state: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, state)
}
