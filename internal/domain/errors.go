package domain

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindConflict
	KindUnauthorized
	KindBadRequest
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is what services hand back to the gateway. Message is safe to show
// to callers, Err carries the diagnostic detail.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail is the diagnostic string returned in the "error" field of a response.
func (e *Error) Detail() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

func Errorf(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, KindInternal for anything that is not a *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
