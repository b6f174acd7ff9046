package model

import "time"

type Registration struct {
	ID                 string    `json:"id"`
	EventID            string    `json:"eventId"`
	RegisteredUserName string    `json:"registeredUserName"`
	Email              string    `json:"email"`
	PhoneNumber        string    `json:"phoneNumber"`
	RegisteredAt       time.Time `json:"registeredAt"`

	// Event is only populated on the current user's registration list.
	Event *Event `json:"event,omitempty"`
}

// NewRegistration is the newRegistrationDto payload.
type NewRegistration struct {
	EventID            string `json:"eventId"`
	RegisteredUserName string `json:"registeredUserName" validate:"min=2"`
	Email              string `json:"email" validate:"required,email"`
	PhoneNumber        string `json:"phoneNumber" validate:"required"`
}

// RegistrationReceipt is what the service returns for a new registration.
type RegistrationReceipt struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
}
