package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"go-gin-event-portal/internal/model"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, apperrors.ErrValidation) hold for field errors.
func (fe FieldErrors) Is(target error) bool {
	return target == apperrors.ErrValidation
}

// messages is keyed by "<json field>.<tag>", falling back to "<json field>".
var messages = map[string]string{
	"title":              "Title is required",
	"description":        "Description too short",
	"location":           "Location is required",
	"organization":       "Organization is required",
	"type":               "Invalid event type",
	"capacity":           "Capacity must be greater than 0",
	"remainingSpots":     "Remaining spots must be at least 1",
	"eventDate":          "Valid event date is required",
	"eventTime":          "Event time is required",
	"cutoffDate":         "Valid cutoff date is required",
	"registeredUserName": "Name must be at least 2 characters",
	"email.required":     "Email is required",
	"email.email":        "Invalid email address",
	"phoneNumber":        "Phone number is required",
}

const (
	msgEventDateInPast  = "Event date cannot be in the past"
	msgCutoffAfterEvent = "Cutoff date cannot be after the event date"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

func collect(s interface{}) FieldErrors {
	fe := FieldErrors{}
	err := validate.Struct(s)
	if err == nil {
		return fe
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe["_"] = err.Error()
		return fe
	}
	for _, e := range verrs {
		field := e.Field()
		if _, seen := fe[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+e.Tag()]; ok {
			fe[field] = msg
		} else if msg, ok := messages[field]; ok {
			fe[field] = msg
		} else {
			fe[field] = fmt.Sprintf("failed %s", e.Tag())
		}
	}
	return fe
}

// ValidateCreate checks a creation form. Event dates before today (date only) are rejected.
func ValidateCreate(form model.EventForm, now time.Time) (model.EventPayload, error) {
	return validateEvent(form, &now)
}

// ValidateUpdate checks an update form. Elapsed events may still be edited.
func ValidateUpdate(form model.EventForm) (model.EventPayload, error) {
	return validateEvent(form, nil)
}

func validateEvent(form model.EventForm, now *time.Time) (model.EventPayload, error) {
	fe := collect(form)

	var eventDate, cutoffDate model.Date
	var eventOK, cutoffOK bool
	if _, bad := fe["eventDate"]; !bad {
		eventDate, _ = model.ParseDate(form.EventDate)
		eventOK = true
	}
	if _, bad := fe["cutoffDate"]; !bad {
		cutoffDate, _ = model.ParseDate(form.CutoffDate)
		cutoffOK = true
	}

	if eventOK && now != nil {
		eventDay := model.StartOfDay(eventDate.UTC())
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if eventDay.Before(today) {
			fe["eventDate"] = msgEventDateInPast
		}
	}
	if eventOK && cutoffOK && cutoffDate.After(eventDate.Time) {
		fe["cutoffDate"] = msgCutoffAfterEvent
	}

	if len(fe) > 0 {
		return model.EventPayload{}, fe
	}

	return model.EventPayload{
		Title:          form.Title,
		Description:    form.Description,
		Location:       form.Location,
		Organization:   form.Organization,
		Type:           form.Type,
		Capacity:       form.Capacity,
		RemainingSpots: form.RemainingSpots,
		EventDate:      eventDate,
		EventTime:      form.EventTime,
		CutoffDate:     cutoffDate,
		ImageURL:       form.ImageURL,
	}, nil
}

// ValidateRegistration checks the registration dialog fields.
func ValidateRegistration(reg model.NewRegistration) error {
	if fe := collect(reg); len(fe) > 0 {
		return fe
	}
	return nil
}
