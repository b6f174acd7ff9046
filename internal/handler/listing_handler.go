package handler

import (
	"net/http"
	"time"

	"go-gin-event-portal/internal/authz"
	"go-gin-event-portal/internal/identity"
	"go-gin-event-portal/internal/listing"
	"go-gin-event-portal/internal/model"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	engine *listing.Engine
	now    func() time.Time
}

func NewListingHandler(engine *listing.Engine) *ListingHandler {
	return &ListingHandler{engine: engine, now: time.Now}
}

func (h *ListingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/screens/:context/events")
	{
		router.GET("", h.Load)
		router.POST("filters", h.ApplyFilters)
		router.DELETE("filters", h.ClearFilters)
		router.POST("next", h.Next)
		router.POST("previous", h.Previous)
		router.POST("refresh", h.Refresh)
	}
}

// ListingQuery selects a page or a search term on load.
type ListingQuery struct {
	Page   *int    `form:"page" binding:"omitempty,min=1"`
	Search *string `form:"search"`
}

// ScreenResponse is a listing view with per-row actions for the caller's role.
type ScreenResponse struct {
	*listing.View
	Role  model.Role  `json:"role"`
	Items []authz.Row `json:"items"`
}

func (h *ListingHandler) respond(c *gin.Context, page model.PageContext, view *listing.View) {
	role := identity.FromContext(c.Request.Context()).Role
	handleSuccess(c, ScreenResponse{
		View:  view,
		Role:  role,
		Items: authz.Rows(role, page, view.Items, h.now()),
	}, http.StatusOK)
}

func (h *ListingHandler) Load(c *gin.Context) {
	page, ok := bindPageContext(c)
	if !ok {
		return
	}
	var q ListingQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	var (
		view *listing.View
		err  error
	)
	ctx := c.Request.Context()
	switch {
	case q.Search != nil:
		view, err = h.engine.Search(ctx, page, *q.Search)
	case q.Page != nil:
		view, err = h.engine.GoToPage(ctx, page, *q.Page)
	default:
		view, err = h.engine.Load(ctx, page)
	}
	if err != nil {
		handleError(c, err, "LoadScreen")
		return
	}
	h.respond(c, page, view)
}

func (h *ListingHandler) ApplyFilters(c *gin.Context) {
	page, ok := bindPageContext(c)
	if !ok {
		return
	}
	var criteria model.FilterCriteria
	if err := BindJson(c, &criteria); err != nil {
		return
	}
	view, err := h.engine.ApplyFilters(c.Request.Context(), page, criteria)
	if err != nil {
		handleError(c, err, "ApplyFilters")
		return
	}
	h.respond(c, page, view)
}

func (h *ListingHandler) ClearFilters(c *gin.Context) {
	page, ok := bindPageContext(c)
	if !ok {
		return
	}
	view, err := h.engine.ClearFilters(c.Request.Context(), page)
	if err != nil {
		handleError(c, err, "ClearFilters")
		return
	}
	h.respond(c, page, view)
}

func (h *ListingHandler) Next(c *gin.Context) {
	page, ok := bindPageContext(c)
	if !ok {
		return
	}
	view, err := h.engine.Next(c.Request.Context(), page)
	if err != nil {
		handleError(c, err, "NextPage")
		return
	}
	h.respond(c, page, view)
}

func (h *ListingHandler) Previous(c *gin.Context) {
	page, ok := bindPageContext(c)
	if !ok {
		return
	}
	view, err := h.engine.Previous(c.Request.Context(), page)
	if err != nil {
		handleError(c, err, "PreviousPage")
		return
	}
	h.respond(c, page, view)
}

func (h *ListingHandler) Refresh(c *gin.Context) {
	page, ok := bindPageContext(c)
	if !ok {
		return
	}
	view, err := h.engine.Refresh(c.Request.Context(), page)
	if err != nil {
		handleError(c, err, "Refresh")
		return
	}
	h.respond(c, page, view)
}
