// Package listing pages and filters the event lists shown on the browse,
// update and delete screens.
package listing

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/registration"
	"go-gin-event-portal/internal/remote"
	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"go.uber.org/zap"
)

const DefaultPageSize = 6

// Mode is how a screen narrows its list.
type Mode string

const (
	// ModeCriteria sends the filter criteria to the event service.
	ModeCriteria Mode = "criteria"
	// ModeLocal fetches plain pages and matches the search term inside the fetched page only.
	ModeLocal Mode = "local"
)

type Stats struct {
	Count           int `json:"count"`
	UniqueLocations int `json:"uniqueLocations"`
	Upcoming        int `json:"upcoming"`
}

// View is the rendered state of a listing screen.
type View struct {
	Context          model.PageContext    `json:"context"`
	Mode             Mode                 `json:"mode"`
	Page             int                  `json:"page"`
	PageSize         int                  `json:"pageSize"`
	TotalPages       int                  `json:"totalPages"`
	Items            []model.Event        `json:"items"`
	Criteria         model.FilterCriteria `json:"criteria"`
	HasPrevious      bool                 `json:"hasPrevious"`
	HasNext          bool                 `json:"hasNext"`
	HasActiveFilters bool                 `json:"hasActiveFilters"`
	Locations        []string             `json:"locations"`
	Stats            Stats                `json:"stats"`
}

type Option func(*Engine)

// WithCriteriaMode makes the given screens filter on the event service.
// By default only the delete screen does.
func WithCriteriaMode(pages ...model.PageContext) Option {
	return func(e *Engine) {
		for _, p := range pages {
			e.modes[p] = ModeCriteria
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

type Engine struct {
	events   remote.EventRepository
	store    StateStore
	pageSize int
	modes    map[model.PageContext]Mode
	now      func() time.Time
	log      *zap.Logger
}

func NewEngine(events remote.EventRepository, store StateStore, pageSize int, opts ...Option) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	e := &Engine{
		events:   events,
		store:    store,
		pageSize: pageSize,
		modes: map[model.PageContext]Mode{
			model.PageBrowse: ModeLocal,
			model.PageUpdate: ModeLocal,
			model.PageDelete: ModeCriteria,
		},
		now: time.Now,
		log: logger.WithComponent("listing"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) ModeFor(page model.PageContext) Mode {
	if m, ok := e.modes[page]; ok {
		return m
	}
	return ModeLocal
}

// FetchPage retrieves one page. A nil criteria asks for the unfiltered list.
func (e *Engine) FetchPage(ctx context.Context, page, pageSize int, criteria *model.FilterCriteria) (model.Page[model.Event], error) {
	if criteria == nil {
		return e.events.ListEvents(ctx, page, pageSize)
	}
	return e.events.ListFilteredEvents(ctx, page, pageSize, *criteria)
}

func (e *Engine) current(ctx context.Context, page model.PageContext) (ScreenState, error) {
	if !page.IsValid() {
		return ScreenState{}, apperrors.ErrInvalidInput
	}
	state, ok, err := e.store.Load(ctx, string(page))
	if err != nil {
		return ScreenState{}, err
	}
	if !ok {
		state = ScreenState{Page: 1, PageSize: e.pageSize}
	}
	if state.PageSize <= 0 {
		state.PageSize = e.pageSize
	}
	if state.Page < 1 {
		state.Page = 1
	}
	return state, nil
}

// Load renders the screen with its stored state, or page 1 on first visit.
func (e *Engine) Load(ctx context.Context, page model.PageContext) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	return e.fetch(ctx, page, state)
}

// Refresh replays the last fetch with the same parameters.
func (e *Engine) Refresh(ctx context.Context, page model.PageContext) (*View, error) {
	return e.Load(ctx, page)
}

func (e *Engine) GoToPage(ctx context.Context, page model.PageContext, n int) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	if n < 1 || (state.TotalPages > 0 && n > state.TotalPages) {
		return nil, apperrors.ErrPageOutOfRange
	}
	state.Page = n
	return e.fetch(ctx, page, state)
}

// Next is disabled on the last page.
func (e *Engine) Next(ctx context.Context, page model.PageContext) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	if state.Page >= state.TotalPages {
		return nil, apperrors.ErrPageOutOfRange
	}
	state.Page++
	return e.fetch(ctx, page, state)
}

// Previous is disabled on page 1.
func (e *Engine) Previous(ctx context.Context, page model.PageContext) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	if state.Page <= 1 {
		return nil, apperrors.ErrPageOutOfRange
	}
	state.Page--
	return e.fetch(ctx, page, state)
}

// ApplyFilters replaces the criteria and goes back to page 1. Screens in
// local mode only accept a search term.
func (e *Engine) ApplyFilters(ctx context.Context, page model.PageContext, criteria model.FilterCriteria) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	if e.ModeFor(page) == ModeLocal && criteria.HasFilters() {
		return nil, apperrors.ErrInvalidInput
	}
	state.Criteria = criteria
	state.Page = 1
	return e.fetch(ctx, page, state)
}

// ClearFilters resets every criterion and the search term, then reloads page 1.
func (e *Engine) ClearFilters(ctx context.Context, page model.PageContext) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	state.Criteria = model.FilterCriteria{}
	state.Page = 1
	return e.fetch(ctx, page, state)
}

// Search sets the free-text term. In criteria mode it is sent to the service
// from page 1; in local mode the current page is refetched and matched locally.
func (e *Engine) Search(ctx context.Context, page model.PageContext, term string) (*View, error) {
	state, err := e.current(ctx, page)
	if err != nil {
		return nil, err
	}
	state.Criteria.SearchTerm = term
	if e.ModeFor(page) == ModeCriteria {
		state.Page = 1
	}
	return e.fetch(ctx, page, state)
}

func (e *Engine) fetch(ctx context.Context, page model.PageContext, state ScreenState) (*View, error) {
	screen := string(page)
	seq, err := e.store.Begin(ctx, screen)
	if err != nil {
		return nil, err
	}

	mode := e.ModeFor(page)
	var criteria *model.FilterCriteria
	if mode == ModeCriteria {
		c := state.Criteria
		criteria = &c
	}

	result, fetchErr := e.FetchPage(ctx, state.Page, state.PageSize, criteria)
	if fetchErr == nil {
		state.TotalPages = result.TotalPages
	}

	// The requested state is kept even when the fetch fails so that Refresh
	// replays exactly this request.
	ok, err := e.store.Commit(ctx, screen, seq, state)
	if err != nil {
		return nil, err
	}
	if !ok {
		e.log.Debug("discarding superseded listing response",
			zap.String("screen", screen),
			zap.Int64("seq", seq),
		)
		return nil, apperrors.ErrSuperseded
	}
	if fetchErr != nil {
		if errors.Is(fetchErr, context.Canceled) {
			return nil, fetchErr
		}
		e.log.Warn("listing fetch failed", zap.String("screen", screen), zap.Error(fetchErr))
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, fetchErr)
	}

	items := result.Items
	if items == nil {
		items = []model.Event{}
	}
	if mode == ModeLocal {
		items = FilterLocal(items, state.Criteria.SearchTerm)
	}

	return &View{
		Context:          page,
		Mode:             mode,
		Page:             state.Page,
		PageSize:         state.PageSize,
		TotalPages:       state.TotalPages,
		Items:            items,
		Criteria:         state.Criteria,
		HasPrevious:      state.Page > 1,
		HasNext:          state.Page < state.TotalPages,
		HasActiveFilters: !state.Criteria.IsEmpty(),
		Locations:        UniqueLocations(items),
		Stats:            e.stats(items),
	}, nil
}

// FilterLocal keeps events whose title or location contains term, ignoring case.
func FilterLocal(events []model.Event, term string) []model.Event {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return events
	}
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Title), term) ||
			strings.Contains(strings.ToLower(ev.Location), term) {
			out = append(out, ev)
		}
	}
	return out
}

// UniqueLocations lists the distinct non-empty locations in first-seen order.
func UniqueLocations(events []model.Event) []string {
	seen := make(map[string]bool)
	locations := make([]string, 0)
	for _, ev := range events {
		if ev.Location == "" || seen[ev.Location] {
			continue
		}
		seen[ev.Location] = true
		locations = append(locations, ev.Location)
	}
	return locations
}

func (e *Engine) stats(events []model.Event) Stats {
	now := e.now()
	s := Stats{Count: len(events), UniqueLocations: len(UniqueLocations(events))}
	for _, ev := range events {
		if registration.IsUpcoming(ev, now) {
			s.Upcoming++
		}
	}
	return s
}
