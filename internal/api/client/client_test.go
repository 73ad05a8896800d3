package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

func TestClient_ListWatches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/watches", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))

		_ = json.NewEncoder(w).Encode([]domain.Watch{
			{ID: "w1", Query: "linen blazer"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	watches, err := c.ListWatches(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, watches, 1)
	assert.Equal(t, "linen blazer", watches[0].Query)
}

func TestClient_CreateWatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req watchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "linen blazer", req.Query)
		require.NotNil(t, req.PriceMax)
		assert.Equal(t, 30.0, *req.PriceMax)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Watch{ID: "w1", Query: req.Query})
	}))
	defer srv.Close()

	maxP := 30.0
	c := New(srv.URL)
	created, err := c.CreateWatch(context.Background(), &domain.Watch{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Query:     "linen blazer",
		PriceMax:  &maxP,
	})
	require.NoError(t, err)
	assert.Equal(t, "w1", created.ID)
}

func TestClient_DeactivateWatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/watches/w1", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeactivateWatch(context.Background(), "w1", "user-1"))
}

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "blazer", r.URL.Query().Get("q"))
		assert.Equal(t, "30", r.URL.Query().Get("max_price"))

		_ = json.NewEncoder(w).Encode(ListingsPage{
			Listings: []domain.Listing{{ID: "l1", Title: "Zara linen blazer"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	maxP := 30.0
	c := New(srv.URL)
	page, err := c.ListListings(context.Background(), ListingFilter{
		Query:    "blazer",
		MaxPrice: &maxP,
	})
	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
	assert.Equal(t, 1, page.Total)
}

func TestClient_TriggerSweep(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sweep", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.SweepStats{Watches: 3, Notified: 2})
	}))
	defer srv.Close()

	c := New(srv.URL)
	stats, err := c.TriggerSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Watches)
	assert.Equal(t, 2, stats.Notified)
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"watch not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetWatch(context.Background(), "w-missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "watch not found")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_ServerNotRunning(t *testing.T) {
	t.Parallel()

	// Port reserved then released, so nothing listens on it.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.ListWatches(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}
