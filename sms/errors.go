package sms

import "errors"

var (
	// ErrConfiguration is returned for missing or invalid client settings.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation is returned for malformed input detected before any network call.
	ErrValidation = errors.New("validation error")
	// ErrAuthentication is returned when the gateway rejects the credentials (HTTP 401).
	ErrAuthentication = errors.New("authentication error")
	// ErrAPI is returned for rate limiting (HTTP 429) and request failures that are not network level.
	ErrAPI = errors.New("api error")
	// ErrNetwork is returned for timeouts and connection failures.
	ErrNetwork = errors.New("network error")
)

// Error is the concrete error type returned by the client. Kind is one of
// the sentinel errors above, so callers can use errors.Is(err, ErrValidation).
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

// Is matches the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}
