package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go-gin-event-portal/internal/authz"
	"go-gin-event-portal/internal/identity"
	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/registration"
	"go-gin-event-portal/internal/service"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	events      service.EventService
	submissions service.SubmissionService
	now         func() time.Time
}

func NewEventHandler(events service.EventService, submissions service.SubmissionService) *EventHandler {
	return &EventHandler{
		events:      events,
		submissions: submissions,
		now:         time.Now,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/:id", h.GetEvent)
		router.POST("events", h.CreateEvent)
		router.PUT("events/:id", h.UpdateEvent)
		router.DELETE("events/:id", h.DeleteEvent)
		router.POST("events/:id/image", h.RetryImage)
		router.GET("event-types", h.EventTypes)
		router.GET("submissions/pending-images", h.PendingImages)
	}
}

// EventDetailResponse is a single event as shown on a screen.
type EventDetailResponse struct {
	Event        *model.Event        `json:"event"`
	Actions      authz.ActionSet     `json:"actions"`
	Registration registration.Status `json:"registration"`
}

// SubmissionResponse reports a create or update. ImageError is set when the
// event was saved but its image was not.
type SubmissionResponse struct {
	*service.SubmissionResult
	ImageError string `json:"imageError,omitempty"`
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	page := model.PageBrowse
	if raw := c.Query("context"); raw != "" {
		parsed, err := model.ParsePageContext(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown screen"})
			return
		}
		page = parsed
	}

	event, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	now := h.now()
	role := identity.FromContext(c.Request.Context()).Role
	handleSuccess(c, EventDetailResponse{
		Event:        event,
		Actions:      authz.RowActions(role, page, *event, now),
		Registration: registration.Evaluate(*event, now),
	}, http.StatusOK)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	form, image, cleanup, err := bindEventForm(c)
	if err != nil {
		return
	}
	defer cleanup()

	result, err := h.submissions.SubmitCreate(c.Request.Context(), form, image)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	handleSuccess(c, newSubmissionResponse(result), http.StatusCreated)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	form, image, cleanup, err := bindEventForm(c)
	if err != nil {
		return
	}
	defer cleanup()

	result, err := h.submissions.SubmitUpdate(c.Request.Context(), c.Param("id"), form, image)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	handleSuccess(c, newSubmissionResponse(result), http.StatusOK)
}

func newSubmissionResponse(result *service.SubmissionResult) SubmissionResponse {
	resp := SubmissionResponse{SubmissionResult: result}
	if result.ImageErr != nil {
		resp.ImageError = apperrors.UserMessage(result.ImageErr)
	}
	return resp
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.events.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *EventHandler) RetryImage(c *gin.Context) {
	image, cleanup, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	defer cleanup()
	if image == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	url, err := h.submissions.RetryImageUpload(c.Request.Context(), c.Param("id"), image)
	if err != nil {
		handleError(c, err, "RetryImage")
		return
	}
	handleSuccess(c, gin.H{"eventId": c.Param("id"), "imageUrl": url}, http.StatusOK)
}

func (h *EventHandler) EventTypes(c *gin.Context) {
	types, err := h.events.EventTypes(c.Request.Context())
	if err != nil {
		handleError(c, err, "EventTypes")
		return
	}
	handleSuccess(c, types, http.StatusOK)
}

func (h *EventHandler) PendingImages(c *gin.Context) {
	pending, err := h.submissions.PendingImageUploads(c.Request.Context())
	if err != nil {
		handleError(c, err, "PendingImages")
		return
	}
	if pending == nil {
		pending = []*model.Submission{}
	}
	handleSuccess(c, pending, http.StatusOK)
}

// bindEventForm accepts either a JSON body or a multipart form with the JSON
// in field "event" and an optional image in field "file". It writes the 400
// response itself when binding fails.
func bindEventForm(c *gin.Context) (model.EventForm, *model.ImageFile, func(), error) {
	var form model.EventForm
	noop := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := BindJson(c, &form); err != nil {
			return form, nil, noop, err
		}
		return form, nil, noop, nil
	}

	raw := c.PostForm("event")
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return form, nil, noop, err
	}
	image, cleanup, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return form, nil, noop, err
	}
	return form, image, cleanup, nil
}

// formImage opens the optional "file" part. The returned cleanup closes it.
func formImage(c *gin.Context) (*model.ImageFile, func(), error) {
	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return newImageFile(fh, f), func() { _ = f.Close() }, nil
}

func newImageFile(fh *multipart.FileHeader, content io.Reader) *model.ImageFile {
	return &model.ImageFile{Name: fh.Filename, Content: content}
}
