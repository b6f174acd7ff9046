package handler

import (
	"net/http"

	"go-gin-event-portal/internal/identity"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	store *identity.Store
}

func NewSessionHandler(store *identity.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("session", h.Get)
		router.POST("session", h.Start)
		router.DELETE("session", h.End)
	}
}

// StartSessionRequest carries the bearer token issued by the identity provider.
type StartSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *SessionHandler) Get(c *gin.Context) {
	handleSuccess(c, h.store.Snapshot(), http.StatusOK)
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	snap, err := h.store.Init(req.Token)
	if err != nil {
		handleError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err), "StartSession")
		return
	}
	handleSuccess(c, snap, http.StatusCreated)
}

func (h *SessionHandler) End(c *gin.Context) {
	h.store.Teardown()
	handleSuccess(c, nil, http.StatusNoContent)
}
