package handler

import (
	"net/http"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	events service.EventService
}

func NewRegistrationHandler(events service.EventService) *RegistrationHandler {
	return &RegistrationHandler{events: events}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/:id/registrations", h.ListForEvent)
		router.POST("events/:id/registrations", h.Register)
		router.DELETE("registrations/:id", h.Cancel)
		router.GET("registrations/mine", h.Mine)
	}
}

// RegisterRequest is the attendee form of the registration screen.
type RegisterRequest struct {
	RegisteredUserName string `json:"registeredUserName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber"`
}

func (h *RegistrationHandler) ListForEvent(c *gin.Context) {
	regs, err := h.events.ListRegistrations(c.Request.Context(), c.Param("id"), c.Query("search"))
	if err != nil {
		handleError(c, err, "ListRegistrations")
		return
	}
	handleSuccess(c, gin.H{"items": regs, "count": len(regs)}, http.StatusOK)
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	receipt, err := h.events.Register(c.Request.Context(), model.NewRegistration{
		EventID:            c.Param("id"),
		RegisteredUserName: req.RegisteredUserName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
	})
	if err != nil {
		handleError(c, err, "Register")
		return
	}
	handleSuccess(c, receipt, http.StatusCreated)
}

func (h *RegistrationHandler) Cancel(c *gin.Context) {
	if err := h.events.CancelRegistration(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "CancelRegistration")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *RegistrationHandler) Mine(c *gin.Context) {
	regs, err := h.events.MyRegistrations(c.Request.Context())
	if err != nil {
		handleError(c, err, "MyRegistrations")
		return
	}
	handleSuccess(c, regs, http.StatusOK)
}
