package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tdevries/vintedwatch/internal/store"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// WatchHandler handles watch subscription endpoints.
type WatchHandler struct {
	store store.Store
}

// NewWatchHandler creates a new WatchHandler.
func NewWatchHandler(s store.Store) *WatchHandler {
	return &WatchHandler{store: s}
}

// List handles GET /api/v1/watches. Pass ?active=true to exclude
// deactivated watches.
func (h *WatchHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	watches, err := h.store.ListWatches(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing watches: " + err.Error(),
		})
	}

	if watches == nil {
		watches = []domain.Watch{}
	}

	return c.JSON(http.StatusOK, watches)
}

// Get handles GET /api/v1/watches/:id.
func (h *WatchHandler) Get(c echo.Context) error {
	id := c.Param("id")

	w, err := h.store.GetWatch(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "watch not found",
		})
	}

	return c.JSON(http.StatusOK, w)
}

type createWatchRequest struct {
	GuildID   string   `json:"guild_id"`
	ChannelID string   `json:"channel_id"`
	UserID    string   `json:"user_id"`
	Query     string   `json:"query"`
	PriceMin  *float64 `json:"price_min"`
	PriceMax  *float64 `json:"price_max"`
}

// Create handles POST /api/v1/watches.
func (h *WatchHandler) Create(c echo.Context) error {
	var req createWatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	w := domain.Watch{
		GuildID:   req.GuildID,
		ChannelID: req.ChannelID,
		UserID:    req.UserID,
		Query:     req.Query,
		PriceMin:  req.PriceMin,
		PriceMax:  req.PriceMax,
		Active:    true,
	}
	if err := w.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	if err := h.store.CreateWatch(c.Request().Context(), &w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating watch: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, w)
}

// Deactivate handles DELETE /api/v1/watches/:id. The user_id query
// parameter must match the watch owner; nobody else can deactivate it.
// The row itself is kept so the notification ledger stays intact.
func (h *WatchHandler) Deactivate(c echo.Context) error {
	id := c.Param("id")
	userID := c.QueryParam("user_id")

	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "user_id query parameter is required",
		})
	}

	ok, err := h.store.DeactivateWatch(c.Request().Context(), id, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deactivating watch: " + err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "no active watch with that id owned by user",
		})
	}

	return c.NoContent(http.StatusNoContent)
}
