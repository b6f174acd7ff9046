package apperrors

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Operation kinds. Service errors wrap one of these together with the cause.
var (
	ErrValidation               = errors.New("validation failed")
	ErrCreationFailed           = errors.New("failed to create the event")
	ErrUpdateFailed             = errors.New("failed to update the event")
	ErrImageUploadFailed        = errors.New("failed to upload the event image")
	ErrFetchFailed              = errors.New("failed to load events")
	ErrDeleteFailed             = errors.New("failed to delete event")
	ErrRegistrationFailed       = errors.New("failed to register for the event")
	ErrCancelRegistrationFailed = errors.New("failed to cancel registration")
	ErrMissingIdentifier        = errors.New("missing identifier")
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrSuperseded           = errors.New("superseded by a newer request")
	ErrPageOutOfRange       = errors.New("page out of range")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrUnauthenticated      = errors.New("no active session")
	ErrSubmissionNotFound   = errors.New("submission not found")
)

// RemoteError is a non-2xx answer from the event service.
type RemoteError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *RemoteError) Error() string {
	switch {
	case len(e.Errors) > 0:
		return fmt.Sprintf("remote %d: %s", e.StatusCode, e.Errors[0])
	case e.Message != "":
		return fmt.Sprintf("remote %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("remote %d", e.StatusCode)
	}
}

// Wrap tags cause with an operation kind.
func Wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

var failedPrefix = regexp.MustCompile(`(?i)^failed:\s*`)

// UserMessage picks the text shown to the user for a failed remote operation:
// the first field error, then the top-level message, then the underlying
// transport or cause message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := causeMessage(err)
	var remote *RemoteError
	if errors.As(err, &remote) {
		switch {
		case len(remote.Errors) > 0 && remote.Errors[0] != "":
			msg = remote.Errors[0]
		case remote.Message != "":
			msg = remote.Message
		}
	}
	return failedPrefix.ReplaceAllString(strings.TrimSpace(msg), "")
}

// causeMessage is the text of the underlying failure: the transport error when
// there is one, otherwise the cause under any kind tags added by Wrap.
func causeMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Error()
	}
	for {
		joined, ok := err.(interface{ Unwrap() []error })
		if !ok {
			break
		}
		errs := joined.Unwrap()
		if len(errs) != 2 || !isSentinel(errs[0]) {
			break
		}
		err = errs[1]
	}
	return err.Error()
}

func isSentinel(err error) bool {
	for _, s := range sentinels {
		if err == s {
			return true
		}
	}
	return false
}

// IsRetryable reports whether replaying the same call can succeed.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrMissingIdentifier),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrPageOutOfRange),
		errors.Is(err, ErrUnauthenticated):
		return false
	}
	var remote *RemoteError
	if errors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500 {
		return remote.StatusCode == 408 || remote.StatusCode == 429
	}
	return true
}

// StatusCode returns the remote status carried by err, or 0.
func StatusCode(err error) int {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode
	}
	return 0
}

var sentinels = []error{
	ErrValidation, ErrCreationFailed, ErrUpdateFailed, ErrImageUploadFailed,
	ErrFetchFailed, ErrDeleteFailed, ErrRegistrationFailed, ErrCancelRegistrationFailed,
	ErrMissingIdentifier, ErrEventNotFound, ErrInvalidInput, ErrSuperseded,
	ErrPageOutOfRange, ErrSubmissionInProgress, ErrUnauthenticated, ErrSubmissionNotFound,
}

var kindNames = []struct {
	kind error
	name string
}{
	{ErrValidation, "Validation"},
	{ErrCreationFailed, "CreationFailed"},
	{ErrUpdateFailed, "UpdateFailed"},
	{ErrImageUploadFailed, "ImageUploadFailed"},
	{ErrFetchFailed, "FetchFailed"},
	{ErrDeleteFailed, "DeleteFailed"},
	{ErrRegistrationFailed, "RegistrationFailed"},
	{ErrCancelRegistrationFailed, "CancelRegistrationFailed"},
	{ErrMissingIdentifier, "MissingIdentifier"},
}

// KindName names the operation kind err carries, or "" when it has none.
func KindName(err error) string {
	for _, k := range kindNames {
		if errors.Is(err, k.kind) {
			return k.name
		}
	}
	return ""
}
