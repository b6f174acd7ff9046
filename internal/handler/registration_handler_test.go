package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/validation"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	req := map[string]string{
		"registeredUserName": "Ada",
		"email":              "ada@example.com",
		"phoneNumber":        "12345",
	}
	expected := model.NewRegistration{
		EventID:            "E1",
		RegisteredUserName: "Ada",
		Email:              "ada@example.com",
		PhoneNumber:        "12345",
	}

	t.Run("Success", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().Register(mock.Anything, expected).
			Return(model.RegistrationReceipt{ID: "r1", EventID: "E1"}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events/E1/registrations", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"r1","eventId":"E1"}`, w.Body.String())
	})

	t.Run("Failed - validation", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().Register(mock.Anything, mock.Anything).
			Return(model.RegistrationReceipt{}, validation.FieldErrors{"email": "Invalid email"}).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events/E1/registrations", req))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Validation", decodeBody(t, w)["kind"])
	})

	t.Run("Failed - event full", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().Register(mock.Anything, expected).
			Return(model.RegistrationReceipt{}, apperrors.Wrap(apperrors.ErrRegistrationFailed,
				&apperrors.RemoteError{StatusCode: 409, Errors: []string{"Event is full"}})).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events/E1/registrations", req))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Event is full", body["error"])
		assert.Equal(t, "RegistrationFailed", body["kind"])
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events/E1/registrations", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListRegistrationsForEvent(t *testing.T) {
	d := setupTestRouter(t)
	d.events.EXPECT().ListRegistrations(mock.Anything, "E1", "ada").
		Return([]model.Registration{{ID: "r1", RegisteredUserName: "Ada"}}, nil).Once()

	w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/events/E1/registrations?search=ada", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])
	assert.Len(t, body["items"], 1)
}

func TestCancelRegistration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().CancelRegistration(mock.Anything, "r1").Return(nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodDelete, "/api/v1/registrations/r1", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - ErrCancelRegistrationFailed", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().CancelRegistration(mock.Anything, "r1").
			Return(apperrors.Wrap(apperrors.ErrCancelRegistrationFailed, &apperrors.RemoteError{StatusCode: 404})).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodDelete, "/api/v1/registrations/r1", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "CancelRegistrationFailed", decodeBody(t, w)["kind"])
	})
}

func TestMyRegistrations(t *testing.T) {
	d := setupTestRouter(t)
	d.events.EXPECT().MyRegistrations(mock.Anything).
		Return([]model.Registration{{ID: "r1", EventID: "E1", Event: &model.Event{ID: "E1", Title: "Go"}}}, nil).Once()

	w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/registrations/mine", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var regs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regs))
	require.Len(t, regs, 1)
	assert.Equal(t, "Go", regs[0]["event"].(map[string]interface{})["title"])
}
