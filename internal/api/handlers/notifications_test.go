package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/tdevries/vintedwatch/internal/store/mocks"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

func TestNotificationsHandler_ListByWatch(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListNotificationsByWatch(mock.Anything, "w1", 50).
		Return([]domain.Notification{
			{ID: "n1", WatchID: "w1", ListingID: "l1", NotifiedAt: time.Now()},
		}, nil).
		Once()

	e := newTestServer(t, ms, nil)
	rec := doRequest(e, http.MethodGet, "/api/v1/watches/w1/notifications", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"n1"`)
}

func TestNotificationsHandler_ListByWatch_CustomLimit(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListNotificationsByWatch(mock.Anything, "w1", 5).
		Return(nil, nil).
		Once()

	e := newTestServer(t, ms, nil)
	rec := doRequest(e, http.MethodGet, "/api/v1/watches/w1/notifications?limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestNotificationsHandler_ListByWatch_InvalidLimit(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	e := newTestServer(t, ms, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/watches/w1/notifications?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationsHandler_ListByWatch_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListNotificationsByWatch(mock.Anything, "w1", 50).
		Return(nil, errors.New("db error")).
		Once()

	e := newTestServer(t, ms, nil)
	rec := doRequest(e, http.MethodGet, "/api/v1/watches/w1/notifications", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
