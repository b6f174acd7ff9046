// Package authz decides which actions an event row offers on a given screen.
package authz

import (
	"encoding/json"
	"time"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/registration"
)

type Action string

const (
	ActionViewDetails       Action = "view_details"
	ActionViewRegistrations Action = "view_registrations"
	ActionRegisterNow       Action = "register_now"
	ActionUpdateEvent       Action = "update_event"
	ActionDeleteEvent       Action = "delete_event"
)

// allActions fixes the rendering order.
var allActions = []Action{
	ActionViewDetails,
	ActionViewRegistrations,
	ActionRegisterNow,
	ActionUpdateEvent,
	ActionDeleteEvent,
}

// ActionSet is a small comparable set of actions.
type ActionSet uint8

func bit(a Action) ActionSet {
	for i, x := range allActions {
		if x == a {
			return 1 << i
		}
	}
	return 0
}

func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s |= bit(a)
	}
	return s
}

func (s ActionSet) Has(a Action) bool {
	b := bit(a)
	return b != 0 && s&b != 0
}

func (s ActionSet) Without(a Action) ActionSet {
	return s &^ bit(a)
}

func (s ActionSet) Actions() []Action {
	out := make([]Action, 0, len(allActions))
	for _, a := range allActions {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s ActionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Actions())
}

type key struct {
	role model.Role
	page model.PageContext
}

var matrix = map[key]ActionSet{
	{model.RoleAdmin, model.PageBrowse}:      NewActionSet(ActionViewDetails, ActionViewRegistrations),
	{model.RoleAdmin, model.PageUpdate}:      NewActionSet(ActionViewDetails, ActionUpdateEvent),
	{model.RoleAdmin, model.PageDelete}:      NewActionSet(ActionViewDetails, ActionDeleteEvent),
	{model.RolePublicUser, model.PageBrowse}: NewActionSet(ActionViewDetails, ActionRegisterNow),
	{model.RolePublicUser, model.PageUpdate}: NewActionSet(ActionViewDetails),
	{model.RolePublicUser, model.PageDelete}: NewActionSet(ActionViewDetails),
}

// Resolve returns the actions a role may see on a screen. Unknown pairs get view-only.
func Resolve(role model.Role, page model.PageContext) ActionSet {
	if s, ok := matrix[key{role, page}]; ok {
		return s
	}
	return NewActionSet(ActionViewDetails)
}

// RowActions resolves the actions for one rendered event, dropping RegisterNow
// when registration is closed or the event is full.
func RowActions(role model.Role, page model.PageContext, event model.Event, now time.Time) ActionSet {
	s := Resolve(role, page)
	if s.Has(ActionRegisterNow) && !registration.CanRegister(event, now) {
		s = s.Without(ActionRegisterNow)
	}
	return s
}

// Row is an event with the actions its screen offers.
type Row struct {
	model.Event
	Actions      ActionSet           `json:"actions"`
	Registration registration.Status `json:"registration"`
}

func Rows(role model.Role, page model.PageContext, events []model.Event, now time.Time) []Row {
	rows := make([]Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, Row{
			Event:        e,
			Actions:      RowActions(role, page, e, now),
			Registration: registration.Evaluate(e, now),
		})
	}
	return rows
}
