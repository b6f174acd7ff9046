package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionOutcome is the end state of a create or update submission.
type SubmissionOutcome string

const (
	OutcomeCreated                 SubmissionOutcome = "created"
	OutcomeCreatedWithImageFailure SubmissionOutcome = "created_with_image_failure"
	OutcomeUpdated                 SubmissionOutcome = "updated"
	OutcomeUpdatedWithImageFailure SubmissionOutcome = "updated_with_image_failure"
	OutcomeInvalid                 SubmissionOutcome = "invalid"
	OutcomeFailed                  SubmissionOutcome = "failed"
)

func (o SubmissionOutcome) IsValid() bool {
	switch o {
	case OutcomeCreated, OutcomeCreatedWithImageFailure,
		OutcomeUpdated, OutcomeUpdatedWithImageFailure,
		OutcomeInvalid, OutcomeFailed:
		return true
	}
	return false
}

// Submitted reports whether the event record exists after the submission.
func (o SubmissionOutcome) Submitted() bool {
	switch o {
	case OutcomeCreated, OutcomeCreatedWithImageFailure,
		OutcomeUpdated, OutcomeUpdatedWithImageFailure:
		return true
	}
	return false
}

func (o SubmissionOutcome) ImageFailed() bool {
	return o == OutcomeCreatedWithImageFailure || o == OutcomeUpdatedWithImageFailure
}

type SubmissionOperation string

const (
	OperationCreate SubmissionOperation = "create"
	OperationUpdate SubmissionOperation = "update"
)

// Submission is a journal entry for one create/update submission.
type Submission struct {
	ID              int                 `json:"id" db:"id"`
	SubmissionID    uuid.UUID           `json:"submission_id" db:"submission_id"`
	Operation       SubmissionOperation `json:"operation" db:"operation"`
	EventID         string              `json:"event_id" db:"event_id"`
	Outcome         SubmissionOutcome   `json:"outcome" db:"outcome"`
	ImageName       *string             `json:"image_name,omitempty" db:"image_name"`
	Error           *string             `json:"error,omitempty" db:"error"`
	ImageResolvedAt *time.Time          `json:"image_resolved_at,omitempty" db:"image_resolved_at"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
}
