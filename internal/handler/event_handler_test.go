package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/service"
	"go-gin-event-portal/internal/validation"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func eventForm() model.EventForm {
	return model.EventForm{
		Title:        "Go Meetup",
		Description:  "An evening of talks about Go.",
		Location:     "Berlin",
		Organization: "Gophers",
		Type:         1,
		Capacity:     50,
		EventDate:    "2031-02-01",
		EventTime:    "18:00",
		CutoffDate:   "2031-01-25",
	}
}

func TestGetEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().GetEvent(mock.Anything, "E1").Return(&model.Event{
			ID:             "E1",
			Capacity:       1,
			RemainingSpots: 1,
			CutoffDate:     model.NewDate(time.Now().Add(48 * time.Hour)),
		}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/events/E1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, []interface{}{"view_details", "register_now"}, body["actions"])
		reg := body["registration"].(map[string]interface{})
		assert.Equal(t, "1 Attendee", reg["capacityLabel"])
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Screen context", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().GetEvent(mock.Anything, "E1").Return(&model.Event{ID: "E1"}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/events/E1?context=delete", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []interface{}{"view_details"}, decodeBody(t, w)["actions"])
	})

	t.Run("Failed - unknown screen", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/events/E1?context=archive", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().GetEvent(mock.Anything, "E9").
			Return(nil, apperrors.Wrap(apperrors.ErrEventNotFound, &apperrors.RemoteError{StatusCode: 404})).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/events/E9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - ErrFetchFailed", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().GetEvent(mock.Anything, "E1").
			Return(nil, apperrors.Wrap(apperrors.ErrFetchFailed, &apperrors.RemoteError{StatusCode: 500, Message: "Failed: db offline"})).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/events/E1", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "db offline", body["error"])
		assert.Equal(t, "FetchFailed", body["kind"])
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success - JSON body", func(t *testing.T) {
		d := setupTestRouter(t)
		d.submissions.EXPECT().SubmitCreate(mock.Anything, eventForm(), (*model.ImageFile)(nil)).
			Return(&service.SubmissionResult{Outcome: model.OutcomeCreated, EventID: "E1"}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events", eventForm()))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "created", body["outcome"])
		assert.Equal(t, "E1", body["eventId"])
	})

	t.Run("Success - multipart with image failure", func(t *testing.T) {
		d := setupTestRouter(t)
		var uploaded string
		d.submissions.EXPECT().SubmitCreate(mock.Anything, eventForm(), mock.AnythingOfType("*model.ImageFile")).
			Run(func(_ context.Context, _ model.EventForm, img *model.ImageFile) {
				raw, _ := io.ReadAll(img.Content)
				uploaded = img.Name + ":" + string(raw)
			}).
			Return(&service.SubmissionResult{
				Outcome:  model.OutcomeCreatedWithImageFailure,
				EventID:  "E2",
				ImageErr: apperrors.Wrap(apperrors.ErrImageUploadFailed, &apperrors.RemoteError{StatusCode: 500, Message: "Failed: storage unavailable"}),
			}, nil).Once()

		req := createMultipartRequest(t, http.MethodPost, "/api/v1/events", eventForm(), "poster.png", []byte("png"))
		w := d.serve(req)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "created_with_image_failure", body["outcome"])
		assert.Equal(t, "E2", body["eventId"])
		assert.Equal(t, "storage unavailable", body["imageError"])
		assert.Equal(t, "poster.png:png", uploaded)
	})

	t.Run("Failed - validation", func(t *testing.T) {
		d := setupTestRouter(t)
		fe := validation.FieldErrors{"cutoffDate": "Cutoff date cannot be after the event date"}
		d.submissions.EXPECT().SubmitCreate(mock.Anything, mock.Anything, mock.Anything).
			Return(&service.SubmissionResult{Outcome: model.OutcomeInvalid, FieldErrors: fe, Err: fe}, fe).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events", eventForm()))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Cutoff date cannot be after the event date", body["fieldErrors"].(map[string]interface{})["cutoffDate"])
	})

	t.Run("Failed - ErrCreationFailed", func(t *testing.T) {
		d := setupTestRouter(t)
		err := apperrors.Wrap(apperrors.ErrCreationFailed, &apperrors.RemoteError{StatusCode: 400, Errors: []string{"Title already exists"}})
		d.submissions.EXPECT().SubmitCreate(mock.Anything, mock.Anything, mock.Anything).
			Return(&service.SubmissionResult{Outcome: model.OutcomeFailed, Err: err}, err).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events", eventForm()))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Title already exists", body["error"])
		assert.Equal(t, "CreationFailed", body["kind"])
	})

	t.Run("Failed - ErrSubmissionInProgress", func(t *testing.T) {
		d := setupTestRouter(t)
		d.submissions.EXPECT().SubmitCreate(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrSubmissionInProgress).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events", eventForm()))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		d.submissions.AssertNotCalled(t, "SubmitCreate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - multipart without event field", func(t *testing.T) {
		d := setupTestRouter(t)

		req := createMultipartRequest(t, http.MethodPost, "/api/v1/events", nil, "poster.png", []byte("png"))
		w := d.serve(req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setupTestRouter(t)
		d.submissions.EXPECT().SubmitUpdate(mock.Anything, "E3", eventForm(), (*model.ImageFile)(nil)).
			Return(&service.SubmissionResult{Outcome: model.OutcomeUpdated, EventID: "E3"}, nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPut, "/api/v1/events/E3", eventForm()))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "updated", decodeBody(t, w)["outcome"])
	})

	t.Run("Failed - ErrUpdateFailed", func(t *testing.T) {
		d := setupTestRouter(t)
		err := apperrors.Wrap(apperrors.ErrUpdateFailed, errors.New("dial tcp: connection refused"))
		d.submissions.EXPECT().SubmitUpdate(mock.Anything, "E3", mock.Anything, mock.Anything).Return(nil, err).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodPut, "/api/v1/events/E3", eventForm()))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "UpdateFailed", decodeBody(t, w)["kind"])
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().DeleteEvent(mock.Anything, "E1").Return(nil).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodDelete, "/api/v1/events/E1", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - ErrDeleteFailed", func(t *testing.T) {
		d := setupTestRouter(t)
		d.events.EXPECT().DeleteEvent(mock.Anything, "E1").
			Return(apperrors.Wrap(apperrors.ErrDeleteFailed, &apperrors.RemoteError{StatusCode: 409, Message: "Event has registrations"})).Once()

		w := d.serve(createJSONHTTPRequest(http.MethodDelete, "/api/v1/events/E1", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Event has registrations", decodeBody(t, w)["error"])
	})
}

func TestRetryImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setupTestRouter(t)
		d.submissions.EXPECT().RetryImageUpload(mock.Anything, "E2", mock.AnythingOfType("*model.ImageFile")).
			Return("/images/E2/poster.png", nil).Once()

		req := createMultipartRequest(t, http.MethodPost, "/api/v1/events/E2/image", nil, "poster.png", []byte("png"))
		w := d.serve(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/images/E2/poster.png", decodeBody(t, w)["imageUrl"])
	})

	t.Run("Failed - no file", func(t *testing.T) {
		d := setupTestRouter(t)

		req := createMultipartRequest(t, http.MethodPost, "/api/v1/events/E2/image", eventForm(), "", nil)
		w := d.serve(req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - not multipart", func(t *testing.T) {
		d := setupTestRouter(t)

		w := d.serve(createJSONHTTPRequest(http.MethodPost, "/api/v1/events/E2/image", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventTypesAndPendingImages(t *testing.T) {
	d := setupTestRouter(t)
	d.events.EXPECT().EventTypes(mock.Anything).Return([]model.EventType{{Value: 0, Label: "Conference"}}, nil).Once()
	d.submissions.EXPECT().PendingImageUploads(mock.Anything).Return(nil, nil).Once()

	w := d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/event-types", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"value":0,"label":"Conference"}]`, w.Body.String())

	w = d.serve(createJSONHTTPRequest(http.MethodGet, "/api/v1/submissions/pending-images", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
