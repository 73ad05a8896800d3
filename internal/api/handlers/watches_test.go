package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tdevries/vintedwatch/internal/api/handlers"
	storeMocks "github.com/tdevries/vintedwatch/internal/store/mocks"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

type fakeSweeper struct {
	stats *domain.SweepStats
	err   error
}

func (f *fakeSweeper) RunSweep(context.Context) (*domain.SweepStats, error) {
	return f.stats, f.err
}

func newTestServer(t *testing.T, ms *storeMocks.MockStore, sweeper handlers.Sweeper) *echo.Echo {
	t.Helper()

	if sweeper == nil {
		sweeper = &fakeSweeper{stats: &domain.SweepStats{}}
	}

	e := echo.New()
	handlers.RegisterRoutes(e, ms, sweeper)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWatchHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns watches",
			path: "/api/v1/watches",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListWatches(mock.Anything, false).
					Return([]domain.Watch{
						{ID: "w1", Query: "linen blazer", ChannelID: "chan-1"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"linen blazer"`,
		},
		{
			name: "active only filter",
			path: "/api/v1/watches?active=true",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListWatches(mock.Anything, true).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			path: "/api/v1/watches",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListWatches(mock.Anything, false).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing watches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			e := newTestServer(t, ms, nil)

			rec := doRequest(e, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestWatchHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "w1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetWatch(mock.Anything, "w1").
					Return(&domain.Watch{ID: "w1", Query: "linen blazer"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"w1"`,
		},
		{
			name: "not found",
			id:   "w-missing",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetWatch(mock.Anything, "w-missing").
					Return(nil, errors.New("not found")).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "watch not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			e := newTestServer(t, ms, nil)

			rec := doRequest(e, http.MethodGet, "/api/v1/watches/"+tt.id, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestWatchHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid watch",
			body: `{"channel_id":"chan-1","user_id":"user-1","query":"linen blazer","price_max":30}`,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateWatch(mock.Anything, mock.MatchedBy(func(w *domain.Watch) bool {
						return w.Query == "linen blazer" &&
							w.Active &&
							w.PriceMax != nil && *w.PriceMax == 30
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"linen blazer"`,
		},
		{
			name:       "missing query",
			body:       `{"channel_id":"chan-1","user_id":"user-1"}`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "query must not be empty",
		},
		{
			name:       "inverted price band",
			body:       `{"channel_id":"chan-1","user_id":"user-1","query":"jas","price_min":50,"price_max":10}`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "price_min must not exceed price_max",
		},
		{
			name: "store error",
			body: `{"channel_id":"chan-1","user_id":"user-1","query":"jas"}`,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateWatch(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating watch",
		},
		{
			name:       "invalid JSON",
			body:       `{invalid}`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			e := newTestServer(t, ms, nil)

			rec := doRequest(e, http.MethodPost, "/api/v1/watches", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestWatchHandler_Deactivate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "owner deactivates",
			path: "/api/v1/watches/w1?user_id=user-1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeactivateWatch(mock.Anything, "w1", "user-1").
					Return(true, nil).
					Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "wrong owner gets 404",
			path: "/api/v1/watches/w1?user_id=intruder",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeactivateWatch(mock.Anything, "w1", "intruder").
					Return(false, nil).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing user_id",
			path:       "/api/v1/watches/w1",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store error",
			path: "/api/v1/watches/w1?user_id=user-1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeactivateWatch(mock.Anything, "w1", "user-1").
					Return(false, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			e := newTestServer(t, ms, nil)

			rec := doRequest(e, http.MethodDelete, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
