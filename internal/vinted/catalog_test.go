package vinted

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogJSON = `{
	"items": [
		{
			"id": 4491250823,
			"title": "Zara linen blazer",
			"url": "https://www.vinted.nl/items/4491250823",
			"price": {"amount": "24.5", "currency_code": "EUR"},
			"photo": {"url": "https://images1.vinted.net/t/blazer.jpg"},
			"brand_title": "Zara",
			"size_title": "M",
			"status": "Very good",
			"user": {"login": "marieke82", "country_code": "NL", "city": "Utrecht"}
		},
		{
			"id": 4491250999,
			"title": "Linen blazer beige",
			"url": "https://www.vinted.nl/items/4491250999",
			"price": {"amount": "18.0", "currency_code": "EUR"},
			"brand_title": "H&M",
			"size_title": "S",
			"status": "Good"
		}
	],
	"pagination": {"total_entries": 2}
}`

func TestCatalogClient_Search(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, catalogPath, r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleCatalogJSON))
	}))
	defer srv.Close()

	c := NewCatalogClient(WithBaseURL(srv.URL), WithPerPage(10))

	min, max := 10.0, 30.0
	resp, err := c.Search(context.Background(), SearchRequest{
		Text:     "linen blazer",
		PriceMin: &min,
		PriceMax: &max,
	})
	require.NoError(t, err)

	assert.Equal(t, "linen blazer", gotQuery["search_text"])
	assert.Equal(t, "newest_first", gotQuery["order"])
	assert.Equal(t, "10", gotQuery["per_page"])
	assert.Equal(t, "10", gotQuery["price_from"])
	assert.Equal(t, "30", gotQuery["price_to"])

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(4491250823), resp.Items[0].ID)
	assert.Equal(t, "24.5", resp.Items[0].Price.Amount)
	assert.Equal(t, "marieke82", resp.Items[0].User.Login)
	assert.Nil(t, resp.Items[1].User)
}

func TestCatalogClient_Search_EmptySnapshot(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [], "pagination": {"total_entries": 0}}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(WithBaseURL(srv.URL))

	resp, err := c.Search(context.Background(), SearchRequest{Text: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Total)
}

func TestCatalogClient_Search_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewCatalogClient(WithBaseURL(srv.URL))

	_, err := c.Search(context.Background(), SearchRequest{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.NotErrorIs(t, err, ErrUnexpectedPayload)
}

func TestCatalogClient_Search_UnexpectedPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Challenge page instead of JSON.
		_, _ = w.Write([]byte("<html><body>Please verify you are human</body></html>"))
	}))
	defer srv.Close()

	c := NewCatalogClient(WithBaseURL(srv.URL))

	_, err := c.Search(context.Background(), SearchRequest{Text: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

func TestCatalogClient_Search_DailyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [], "pagination": {"total_entries": 0}}`))
	}))
	defer srv.Close()

	rl := NewRateLimiter(1000, 1000, 1)
	c := NewCatalogClient(WithBaseURL(srv.URL), WithRateLimiter(rl))

	_, err := c.Search(context.Background(), SearchRequest{Text: "x"})
	require.NoError(t, err)

	_, err = c.Search(context.Background(), SearchRequest{Text: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestCatalogClient_Search_RequestLimitOverride(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`{"items": [], "pagination": {"total_entries": 0}}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(WithBaseURL(srv.URL), WithPerPage(10))

	_, err := c.Search(context.Background(), SearchRequest{Text: "x", Limit: 25})
	require.NoError(t, err)
}
