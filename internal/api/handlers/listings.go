package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tdevries/vintedwatch/internal/store"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

type listListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// List handles GET /api/v1/listings with optional filters:
// q (title substring), brand, min_price, max_price, limit, offset
// and order_by (price or first_seen_at).
func (h *ListingsHandler) List(c echo.Context) error {
	q := &store.ListingQuery{
		OrderBy: c.QueryParam("order_by"),
	}

	if s := c.QueryParam("q"); s != "" {
		q.TitleContains = &s
	}
	if s := c.QueryParam("brand"); s != "" {
		q.Brand = &s
	}
	if s := c.QueryParam("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid min_price: " + s,
			})
		}
		q.MinPrice = &v
	}
	if s := c.QueryParam("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid max_price: " + s,
			})
		}
		q.MaxPrice = &v
	}
	if s := c.QueryParam("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid limit: " + s,
			})
		}
		q.Limit = v
	}
	if s := c.QueryParam("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid offset: " + s,
			})
		}
		q.Offset = v
	}

	listings, total, err := h.store.ListListings(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing query failed: " + err.Error(),
		})
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	return c.JSON(http.StatusOK, listListingsResponse{
		Listings: listings,
		Total:    total,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
}

// Get handles GET /api/v1/listings/:id.
func (h *ListingsHandler) Get(c echo.Context) error {
	id := c.Param("id")

	l, err := h.store.GetListingByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "listing not found",
		})
	}

	return c.JSON(http.StatusOK, l)
}
