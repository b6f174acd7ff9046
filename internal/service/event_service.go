package service

import (
	"context"
	"errors"
	"strings"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/remote"
	"go-gin-event-portal/internal/validation"
	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	EventTypes(ctx context.Context) ([]model.EventType, error)
	// ListRegistrations returns the attendees of an event, narrowed by a
	// case-insensitive name or email match when search is set.
	ListRegistrations(ctx context.Context, eventID, search string) ([]model.Registration, error)
	MyRegistrations(ctx context.Context) ([]model.Registration, error)
	Register(ctx context.Context, reg model.NewRegistration) (model.RegistrationReceipt, error)
	CancelRegistration(ctx context.Context, id string) error
}

type EventServiceImpl struct {
	events remote.EventRepository
	log    *zap.Logger
}

func NewEventService(events remote.EventRepository) EventService {
	return &EventServiceImpl{
		events: events,
		log:    logger.WithComponent("service"),
	}
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, apperrors.ErrMissingIdentifier
	}
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}
	return event, nil
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrMissingIdentifier
	}
	if err := s.events.DeleteEvent(ctx, id); err != nil {
		s.log.Warn("delete event failed", zap.String("event_id", id), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	s.log.Info("event deleted", zap.String("event_id", id))
	return nil
}

func (s *EventServiceImpl) EventTypes(ctx context.Context) ([]model.EventType, error) {
	types, err := s.events.ListEventTypes(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}
	if types == nil {
		types = []model.EventType{}
	}
	return types, nil
}

func (s *EventServiceImpl) ListRegistrations(ctx context.Context, eventID, search string) ([]model.Registration, error) {
	if eventID == "" {
		return nil, apperrors.ErrMissingIdentifier
	}
	regs, err := s.events.ListRegistrationsForEvent(ctx, eventID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}
	return filterRegistrations(regs, search), nil
}

func filterRegistrations(regs []model.Registration, search string) []model.Registration {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.Registration, 0, len(regs))
	for _, r := range regs {
		if term == "" ||
			strings.Contains(strings.ToLower(r.RegisteredUserName), term) ||
			strings.Contains(strings.ToLower(r.Email), term) {
			out = append(out, r)
		}
	}
	return out
}

func (s *EventServiceImpl) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	regs, err := s.events.ListMyRegistrations(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	return regs, nil
}

func (s *EventServiceImpl) Register(ctx context.Context, reg model.NewRegistration) (model.RegistrationReceipt, error) {
	if err := validation.ValidateRegistration(reg); err != nil {
		return model.RegistrationReceipt{}, err
	}
	receipt, err := s.events.Register(ctx, reg)
	if err == nil && receipt.EventID == "" {
		err = errors.New("registration response carried no event id")
	}
	if err != nil {
		s.log.Warn("registration failed", zap.String("event_id", reg.EventID), zap.Error(err))
		return model.RegistrationReceipt{}, apperrors.Wrap(apperrors.ErrRegistrationFailed, err)
	}
	return receipt, nil
}

func (s *EventServiceImpl) CancelRegistration(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrMissingIdentifier
	}
	if err := s.events.CancelRegistration(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrCancelRegistrationFailed, err)
	}
	return nil
}
