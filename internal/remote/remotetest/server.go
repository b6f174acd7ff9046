// Package remotetest runs an in-memory event service for tests.
package remotetest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"go-gin-event-portal/internal/model"

	"github.com/gin-gonic/gin"
)

// Server speaks the event service contract over a local listener.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	events        []model.Event
	registrations []model.Registration
	types         []model.EventType
	nextID        int
	calls         map[string]int
	failImages    bool
	lastAuth      string
}

func NewServer() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		calls: make(map[string]int),
		types: []model.EventType{
			{Value: 0, Label: "Conference"},
			{Value: 1, Label: "Workshop"},
			{Value: 2, Label: "Meetup"},
		},
	}

	r := gin.New()
	r.Use(s.track)
	api := r.Group("/api")
	{
		api.GET("events", s.listEvents)
		api.GET("events/event-types", s.listTypes)
		api.GET("events/:id", s.getEvent)
		api.POST("events", s.createEvent)
		api.PUT("events/:id", s.updateEvent)
		api.DELETE("events/:id", s.deleteEvent)
		api.POST("events/:id/upload-image", s.uploadImage)
		api.GET("events/:id/registrations", s.listRegistrations)
		api.GET("registrations/user", s.myRegistrations)
		api.POST("registrations", s.register)
		api.DELETE("registrations/:id", s.cancelRegistration)
	}
	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the value to hand to remote.NewEventRepository.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// Seed appends events, assigning ids to those without one.
func (s *Server) Seed(events ...model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range events {
		if e.ID == "" {
			e.ID = s.newID()
		}
		s.events = append(s.events, e)
	}
}

// Events returns a copy of the stored events.
func (s *Server) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Event(nil), s.events...)
}

// FailImageUploads makes every later image upload answer 500.
func (s *Server) FailImageUploads(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failImages = fail
}

// LastAuthorization is the Authorization header of the latest request.
func (s *Server) LastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

// Calls counts requests by "METHOD /route".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

func (s *Server) track(c *gin.Context) {
	c.Next()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[c.Request.Method+" "+strings.TrimPrefix(c.FullPath(), "/api")]++
	s.lastAuth = c.GetHeader("Authorization")
}

func (s *Server) newID() string {
	s.nextID++
	return fmt.Sprintf("evt-%d", s.nextID)
}

func (s *Server) find(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"message": what + " not found"})
}

func (s *Server) listEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "6"))
	if page < 1 || size < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid paging"})
		return
	}

	s.mu.Lock()
	matched := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		if matches(e, c) {
			matched = append(matched, e)
		}
	}
	s.mu.Unlock()

	total := (len(matched) + size - 1) / size
	start := (page - 1) * size
	items := []model.Event{}
	if start < len(matched) {
		end := start + size
		if end > len(matched) {
			end = len(matched)
		}
		items = matched[start:end]
	}
	c.JSON(http.StatusOK, model.Page[model.Event]{Items: items, TotalPages: total})
}

func matches(e model.Event, c *gin.Context) bool {
	if term := strings.ToLower(c.Query("search")); term != "" &&
		!strings.Contains(strings.ToLower(e.Title), term) &&
		!strings.Contains(strings.ToLower(e.Location), term) {
		return false
	}
	if loc := c.Query("location"); loc != "" && !strings.EqualFold(e.Location, loc) {
		return false
	}
	if typ := c.Query("type"); typ != "" && typ != strconv.Itoa(e.Type) {
		return false
	}
	if from, err := model.ParseDate(c.Query("dateFrom")); err == nil && e.EventDate.Before(from.Time) {
		return false
	}
	if to, err := model.ParseDate(c.Query("dateTo")); err == nil && e.EventDate.After(to.Time) {
		return false
	}
	return true
}

func (s *Server) listTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"value": s.types})
}

func (s *Server) getEvent(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(c.Param("id"))
	if i < 0 {
		notFound(c, "Event")
		return
	}
	c.JSON(http.StatusOK, s.events[i])
}

func fromPayload(id string, p model.EventPayload) model.Event {
	remaining := p.Capacity
	if p.RemainingSpots != nil {
		remaining = *p.RemainingSpots
	}
	return model.Event{
		ID:             id,
		Title:          p.Title,
		Description:    p.Description,
		Location:       p.Location,
		Organization:   p.Organization,
		Type:           p.Type,
		Capacity:       p.Capacity,
		RemainingSpots: remaining,
		EventDate:      p.EventDate,
		EventTime:      p.EventTime,
		CutoffDate:     p.CutoffDate,
		ImageURL:       p.ImageURL,
	}
}

func (s *Server) createEvent(c *gin.Context) {
	var req struct {
		NewEventDto *model.EventPayload `json:"newEventDto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewEventDto == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed: newEventDto is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := fromPayload(s.newID(), *req.NewEventDto)
	s.events = append(s.events, e)
	c.JSON(http.StatusCreated, gin.H{"id": e.ID})
}

func (s *Server) updateEvent(c *gin.Context) {
	var req struct {
		UpdateEventDto *model.EventPayload `json:"updateEventDto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UpdateEventDto == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed: updateEventDto is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(c.Param("id"))
	if i < 0 {
		notFound(c, "Event")
		return
	}
	updated := fromPayload(s.events[i].ID, *req.UpdateEventDto)
	if updated.ImageURL == "" {
		updated.ImageURL = s.events[i].ImageURL
	}
	s.events[i] = updated
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": updated.ID}})
}

func (s *Server) deleteEvent(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(c.Param("id"))
	if i < 0 {
		notFound(c, "Event")
		return
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	c.Status(http.StatusNoContent)
}

func (s *Server) uploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"file is required"}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failImages {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed: image storage unavailable"})
		return
	}
	i := s.find(c.Param("id"))
	if i < 0 {
		notFound(c, "Event")
		return
	}
	url := fmt.Sprintf("/images/%s/%s", s.events[i].ID, fh.Filename)
	s.events[i].ImageURL = url
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

func (s *Server) listRegistrations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Registration{}
	for _, r := range s.registrations {
		if r.EventID == c.Param("id") {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) myRegistrations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Registration{}
	for _, r := range s.registrations {
		if i := s.find(r.EventID); i >= 0 {
			ev := s.events[i]
			r.Event = &ev
		}
		out = append(out, r)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		NewRegistrationDto *model.NewRegistration `json:"newRegistrationDto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewRegistrationDto == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed: newRegistrationDto is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dto := req.NewRegistrationDto
	i := s.find(dto.EventID)
	if i < 0 {
		notFound(c, "Event")
		return
	}
	if s.events[i].RemainingSpots <= 0 {
		c.JSON(http.StatusConflict, gin.H{"errors": []string{"Event is full"}})
		return
	}
	s.events[i].RemainingSpots--
	reg := model.Registration{
		ID:                 fmt.Sprintf("reg-%d", len(s.registrations)+1),
		EventID:            dto.EventID,
		RegisteredUserName: dto.RegisteredUserName,
		Email:              dto.Email,
		PhoneNumber:        dto.PhoneNumber,
		RegisteredAt:       time.Now().UTC(),
	}
	s.registrations = append(s.registrations, reg)
	c.JSON(http.StatusCreated, gin.H{"id": reg.ID, "eventId": reg.EventID})
}

func (s *Server) cancelRegistration(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.registrations {
		if r.ID != c.Param("id") {
			continue
		}
		if j := s.find(r.EventID); j >= 0 {
			s.events[j].RemainingSpots++
		}
		s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)
		c.Status(http.StatusNoContent)
		return
	}
	notFound(c, "Registration")
}
