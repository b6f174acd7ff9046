package model

// Event is the event record as returned by the event service.
type Event struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Organization   string `json:"organization"`
	Type           int    `json:"type"`
	Capacity       int    `json:"capacity"`
	RemainingSpots int    `json:"remainingSpots"`
	EventDate      Date   `json:"eventDate"`
	EventTime      string `json:"eventTime"`
	CutoffDate     Date   `json:"cutoffDate"`
	ImageURL       string `json:"eventImageUrl,omitempty"`
}

// EventForm is what the user submitted on the create or update screen.
// Dates are kept as text until validation parses them.
type EventForm struct {
	Title          string `json:"title" validate:"min=3"`
	Description    string `json:"description" validate:"min=10"`
	Location       string `json:"location" validate:"min=3"`
	Organization   string `json:"organization" validate:"min=3"`
	Type           int    `json:"type" validate:"min=0,max=9"`
	Capacity       int    `json:"capacity" validate:"min=1"`
	RemainingSpots *int   `json:"remainingSpots,omitempty" validate:"omitempty,min=1"`
	EventDate      string `json:"eventDate" validate:"required,date"`
	EventTime      string `json:"eventTime" validate:"required"`
	CutoffDate     string `json:"cutoffDate" validate:"required,date"`
	ImageURL       string `json:"eventImageUrl,omitempty"`
}

// EventPayload is a validated form, ready to be sent as newEventDto/updateEventDto.
type EventPayload struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Organization   string `json:"organization"`
	Type           int    `json:"type"`
	Capacity       int    `json:"capacity"`
	RemainingSpots *int   `json:"remainingSpots,omitempty"`
	EventDate      Date   `json:"eventDate"`
	EventTime      string `json:"eventTime"`
	CutoffDate     Date   `json:"cutoffDate"`
	ImageURL       string `json:"eventImageUrl,omitempty"`
}

type EventType struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}
