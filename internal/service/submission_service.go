package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/remote"
	"go-gin-event-portal/internal/repository"
	"go-gin-event-portal/internal/validation"
	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"go.uber.org/zap"
)

// SubmissionState is where a create/update form currently stands.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateSubmitting SubmissionState = "submitting"
	StateSubmitted  SubmissionState = "submitted"
)

// SubmissionResult is the outcome of the record-then-image sequence.
//
// A record that was written is a success even when the image upload failed;
// the upload failure is reported separately in ImageErr.
type SubmissionResult struct {
	Outcome     model.SubmissionOutcome `json:"outcome"`
	EventID     string                  `json:"eventId,omitempty"`
	ImageURL    string                  `json:"imageUrl,omitempty"`
	FieldErrors validation.FieldErrors  `json:"fieldErrors,omitempty"`
	Err         error                   `json:"-"`
	ImageErr    error                   `json:"-"`
}

func (r *SubmissionResult) Submitted() bool {
	return r != nil && r.Outcome.Submitted()
}

// SubmissionGuard makes submit non-re-entrant for a form.
type SubmissionGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type SubmissionService interface {
	// SubmitCreate validates the form, creates the event, then uploads image if given.
	// err is set only for Invalid and Failed outcomes.
	SubmitCreate(ctx context.Context, form model.EventForm, image *model.ImageFile) (*SubmissionResult, error)
	// SubmitUpdate does the same for an existing event.
	SubmitUpdate(ctx context.Context, id string, form model.EventForm, image *model.ImageFile) (*SubmissionResult, error)
	// RetryImageUpload re-sends an image for an event whose upload failed.
	RetryImageUpload(ctx context.Context, id string, image *model.ImageFile) (string, error)
	PendingImageUploads(ctx context.Context) ([]*model.Submission, error)
	State(key string) SubmissionState
}

type SubmissionServiceImpl struct {
	events  remote.EventRepository
	journal repository.SubmissionRepository
	guard   SubmissionGuard
	states  *stateTracker
	now     func() time.Time
	log     *zap.Logger
}

func NewSubmissionService(
	events remote.EventRepository,
	journal repository.SubmissionRepository,
	guard SubmissionGuard,
) SubmissionService {
	if journal == nil {
		journal = repository.NoopSubmissionRepository{}
	}
	if guard == nil {
		guard = NewMemorySubmissionGuard()
	}
	return &SubmissionServiceImpl{
		events:  events,
		journal: journal,
		guard:   guard,
		states:  newStateTracker(),
		now:     time.Now,
		log:     logger.WithComponent("service"),
	}
}

// CreateFormKey and UpdateFormKey name the forms for guarding and state.
func CreateFormKey() string { return "create" }

func UpdateFormKey(id string) string { return "update:" + id }

func (s *SubmissionServiceImpl) State(key string) SubmissionState {
	return s.states.get(key)
}

func (s *SubmissionServiceImpl) SubmitCreate(ctx context.Context, form model.EventForm, image *model.ImageFile) (*SubmissionResult, error) {
	key := CreateFormKey()
	release, err := s.guard.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	s.states.set(key, StateValidating)
	payload, err := validation.ValidateCreate(form, s.now())
	if err != nil {
		s.states.set(key, StateIdle)
		return invalidResult(err)
	}

	s.states.set(key, StateSubmitting)
	id, err := s.events.CreateEvent(ctx, payload)
	if err == nil && id == "" {
		err = errors.New("no event id returned from event creation")
	}
	if err != nil {
		s.states.set(key, StateIdle)
		res := &SubmissionResult{Outcome: model.OutcomeFailed, Err: apperrors.Wrap(apperrors.ErrCreationFailed, err)}
		s.record(ctx, model.OperationCreate, "", res, image)
		return res, res.Err
	}

	res := &SubmissionResult{Outcome: model.OutcomeCreated, EventID: id}
	s.attachImage(ctx, res, image, model.OutcomeCreatedWithImageFailure)

	s.states.set(key, StateSubmitted)
	s.record(ctx, model.OperationCreate, id, res, image)
	return res, nil
}

func (s *SubmissionServiceImpl) SubmitUpdate(ctx context.Context, id string, form model.EventForm, image *model.ImageFile) (*SubmissionResult, error) {
	if id == "" {
		return nil, apperrors.ErrMissingIdentifier
	}
	key := UpdateFormKey(id)
	release, err := s.guard.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	s.states.set(key, StateValidating)
	payload, err := validation.ValidateUpdate(form)
	if err != nil {
		s.states.set(key, StateIdle)
		return invalidResult(err)
	}

	s.states.set(key, StateSubmitting)
	updatedID, err := s.events.UpdateEvent(ctx, id, payload)
	if err != nil {
		s.states.set(key, StateIdle)
		res := &SubmissionResult{Outcome: model.OutcomeFailed, EventID: id, Err: apperrors.Wrap(apperrors.ErrUpdateFailed, err)}
		s.record(ctx, model.OperationUpdate, id, res, image)
		return res, res.Err
	}
	if updatedID == "" {
		updatedID = id
	}

	res := &SubmissionResult{Outcome: model.OutcomeUpdated, EventID: updatedID}
	s.attachImage(ctx, res, image, model.OutcomeUpdatedWithImageFailure)

	s.states.set(key, StateSubmitted)
	s.record(ctx, model.OperationUpdate, updatedID, res, image)
	return res, nil
}

// attachImage runs only after the record step produced an id. A failure here
// downgrades the outcome but never fails the submission.
func (s *SubmissionServiceImpl) attachImage(ctx context.Context, res *SubmissionResult, image *model.ImageFile, failed model.SubmissionOutcome) {
	if image == nil {
		return
	}
	url, err := s.events.UploadEventImage(ctx, res.EventID, *image)
	if err != nil {
		s.log.Warn("image upload failed",
			zap.String("event_id", res.EventID),
			zap.String("image", image.Name),
			zap.Error(err),
		)
		res.Outcome = failed
		res.ImageErr = apperrors.Wrap(apperrors.ErrImageUploadFailed, err)
		return
	}
	res.ImageURL = url
}

func invalidResult(err error) (*SubmissionResult, error) {
	res := &SubmissionResult{Outcome: model.OutcomeInvalid, Err: err}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		res.FieldErrors = fe
	}
	return res, err
}

// record journals the outcome. Journal trouble is logged, never surfaced.
func (s *SubmissionServiceImpl) record(ctx context.Context, op model.SubmissionOperation, eventID string, res *SubmissionResult, image *model.ImageFile) {
	entry := &model.Submission{
		Operation: op,
		EventID:   eventID,
		Outcome:   res.Outcome,
	}
	if image != nil {
		name := image.Name
		entry.ImageName = &name
	}
	switch {
	case res.Err != nil:
		msg := res.Err.Error()
		entry.Error = &msg
	case res.ImageErr != nil:
		msg := res.ImageErr.Error()
		entry.Error = &msg
	}

	if _, err := s.journal.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Error("failed to journal submission",
			zap.String("operation", string(op)),
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}
}

func (s *SubmissionServiceImpl) RetryImageUpload(ctx context.Context, id string, image *model.ImageFile) (string, error) {
	if id == "" {
		return "", apperrors.ErrMissingIdentifier
	}
	if image == nil {
		return "", apperrors.ErrInvalidInput
	}
	url, err := s.events.UploadEventImage(ctx, id, *image)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrImageUploadFailed, err)
	}
	if _, err := s.journal.ResolveImage(context.WithoutCancel(ctx), id); err != nil {
		s.log.Error("failed to resolve journaled image failure", zap.String("event_id", id), zap.Error(err))
	}
	return url, nil
}

func (s *SubmissionServiceImpl) PendingImageUploads(ctx context.Context) ([]*model.Submission, error) {
	return s.journal.ListPendingImages(ctx)
}

type stateTracker struct {
	mu     sync.RWMutex
	states map[string]SubmissionState
}

func newStateTracker() *stateTracker {
	return &stateTracker{states: make(map[string]SubmissionState)}
}

func (t *stateTracker) get(key string) SubmissionState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if st, ok := t.states[key]; ok {
		return st
	}
	return StateIdle
}

func (t *stateTracker) set(key string, st SubmissionState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[key] = st
}

// MemorySubmissionGuard is the single-process SubmissionGuard.
type MemorySubmissionGuard struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewMemorySubmissionGuard() *MemorySubmissionGuard {
	return &MemorySubmissionGuard{held: make(map[string]bool)}
}

func (g *MemorySubmissionGuard) Acquire(ctx context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[key] {
		return nil, apperrors.ErrSubmissionInProgress
	}
	g.held[key] = true
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.held, key)
		})
	}, nil
}
