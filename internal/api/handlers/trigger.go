package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// Sweeper defines the interface for triggering a sweep manually.
type Sweeper interface {
	RunSweep(ctx context.Context) (*domain.SweepStats, error)
}

// SweepHandler handles manual sweep trigger requests.
type SweepHandler struct {
	sweeper Sweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(s Sweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

// Trigger handles POST /api/v1/sweep and runs a full sweep over all
// active watches synchronously.
func (h *SweepHandler) Trigger(c echo.Context) error {
	stats, err := h.sweeper.RunSweep(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "sweep failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, stats)
}
