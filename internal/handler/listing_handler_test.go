package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"go-gin-event-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openEvents(n int) []model.Event {
	cutoff := model.NewDate(time.Now().AddDate(0, 0, 7))
	events := make([]model.Event, 0, n)
	for i := 1; i <= n; i++ {
		events = append(events, model.Event{
			ID:             fmt.Sprintf("E%d", i),
			Title:          fmt.Sprintf("Event %d", i),
			Location:       "Berlin",
			Capacity:       10,
			RemainingSpots: 5,
			EventDate:      model.NewDate(time.Now().AddDate(0, 0, 14)),
			CutoffDate:     cutoff,
		})
	}
	return events
}

func rowActions(t *testing.T, body map[string]interface{}) [][]interface{} {
	t.Helper()
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	out := make([][]interface{}, 0, len(items))
	for _, it := range items {
		out = append(out, it.(map[string]interface{})["actions"].([]interface{}))
	}
	return out
}

func TestListingScreen_RowActionsByRole(t *testing.T) {
	t.Run("Public user on browse", func(t *testing.T) {
		d := setupTestRouter(t)
		d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
			Return(model.Page[model.Event]{Items: openEvents(2), TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/browse/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "public_user", body["role"])
		assert.Equal(t, "local", body["mode"])
		for _, actions := range rowActions(t, body) {
			assert.Equal(t, []interface{}{"view_details", "register_now"}, actions)
		}
	})

	t.Run("Admin on browse", func(t *testing.T) {
		d := setupTestRouter(t)
		_, err := d.sessions.Init(signToken(t, "admin"))
		require.NoError(t, err)
		d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
			Return(model.Page[model.Event]{Items: openEvents(1), TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/browse/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "admin", body["role"])
		assert.Equal(t, [][]interface{}{{"view_details", "view_registrations"}}, rowActions(t, body))
	})

	t.Run("Admin on delete uses criteria mode", func(t *testing.T) {
		d := setupTestRouter(t)
		_, err := d.sessions.Init(signToken(t, "admin"))
		require.NoError(t, err)
		d.remote.EXPECT().ListFilteredEvents(mock.Anything, 1, 6, model.FilterCriteria{}).
			Return(model.Page[model.Event]{Items: openEvents(1), TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/delete/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "criteria", body["mode"])
		assert.Equal(t, [][]interface{}{{"view_details", "delete_event"}}, rowActions(t, body))
	})

	t.Run("Full event hides register", func(t *testing.T) {
		d := setupTestRouter(t)
		events := openEvents(1)
		events[0].RemainingSpots = 0
		d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
			Return(model.Page[model.Event]{Items: events, TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/browse/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, [][]interface{}{{"view_details"}}, rowActions(t, decodeBody(t, w)))
	})
}

func TestListingScreen_Navigation(t *testing.T) {
	d := setupTestRouter(t)
	d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
		Return(model.Page[model.Event]{Items: openEvents(6), TotalPages: 2}, nil).Twice()
	d.remote.EXPECT().ListEvents(mock.Anything, 2, 6).
		Return(model.Page[model.Event]{Items: openEvents(3), TotalPages: 2}, nil).Once()

	w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/update/events/previous", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/update/events", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["hasNext"])
	assert.Equal(t, false, body["hasPrevious"])

	w = d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/update/events/next", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.EqualValues(t, 2, body["page"])
	assert.Equal(t, false, body["hasNext"])

	w = d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/update/events/next", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/update/events/previous", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["page"])
}

func TestListingScreen_Filters(t *testing.T) {
	t.Run("Criteria mode sends filters", func(t *testing.T) {
		d := setupTestRouter(t)
		criteria := model.FilterCriteria{SearchTerm: "jazz", Location: "Berlin"}
		d.remote.EXPECT().ListFilteredEvents(mock.Anything, 1, 6, criteria).
			Return(model.Page[model.Event]{Items: openEvents(1), TotalPages: 1}, nil).Once()
		d.remote.EXPECT().ListFilteredEvents(mock.Anything, 1, 6, model.FilterCriteria{}).
			Return(model.Page[model.Event]{Items: openEvents(3), TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/delete/events/filters", criteria))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["hasActiveFilters"])

		w = d.serve(createJSONHTTPRequest(http.MethodDelete, "/api/v1/screens/delete/events/filters", nil))
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["hasActiveFilters"])
		assert.Len(t, body["items"], 3)
	})

	t.Run("Local mode rejects criteria", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/browse/events/filters",
			model.FilterCriteria{Location: "Berlin"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Local search", func(t *testing.T) {
		d := setupTestRouter(t)
		d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
			Return(model.Page[model.Event]{Items: openEvents(6), TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/browse/events?search=event%205", nil))

		require.Equal(t, http.StatusOK, w.Code)
		items := decodeBody(t, w)["items"].([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "E5", items[0].(map[string]interface{})["id"])
	})

	t.Run("Failed - bad page query", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/browse/events?page=0", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListingScreen_Errors(t *testing.T) {
	t.Run("Unknown screen", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/archive/events", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fetch failure then refresh", func(t *testing.T) {
		d := setupTestRouter(t)
		d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
			Return(model.Page[model.Event]{}, errors.New("connection refused")).Once()
		d.remote.EXPECT().ListEvents(mock.Anything, 1, 6).
			Return(model.Page[model.Event]{Items: openEvents(1), TotalPages: 1}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/screens/browse/events", nil))
		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "FetchFailed", decodeBody(t, w)["kind"])

		w = d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/screens/browse/events/refresh", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["items"], 1)
	})
}
