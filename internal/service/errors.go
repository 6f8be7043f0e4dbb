package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why a lookup failed.
type ErrorKind int

const (
	// KindValidation means the input was rejected before any network call.
	KindValidation ErrorKind = iota + 1
	// KindNotFound means the geocoder had no match for the postal code.
	KindNotFound
	// KindTransport means a backend call failed at the network or protocol level.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// User-visible messages for each failure kind.
const (
	MessageValidation = "Please enter a zipcode."
	MessageNotFound   = "No location found for that zipcode."
	MessageTransport  = "There was an error fetching data. Please try again later."
)

// ErrSuperseded is returned to the caller of a lookup whose response arrived after a newer
// lookup was issued. Such a response never touches the session state.
var ErrSuperseded = errors.New("lookup superseded by a newer search")

// LookupError is a terminal failure of one lookup attempt.
type LookupError struct {
	Kind    ErrorKind
	Message string // Message is safe to show to the user.
	Err     error  // Err is the underlying cause, if any.
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s lookup error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s lookup error: %s", e.Kind, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the failure kind to a response status for the API layer.
func (e *LookupError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func newLookupError(kind ErrorKind, err error) *LookupError {
	var msg string
	switch kind {
	case KindValidation:
		msg = MessageValidation
	case KindNotFound:
		msg = MessageNotFound
	default:
		msg = MessageTransport
	}

	return &LookupError{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the failure kind from err, or 0 when err is not a *LookupError.
func KindOf(err error) ErrorKind {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind
	}
	return 0
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsTransport(err error) bool  { return KindOf(err) == KindTransport }
