package services

// ErrorKind classifies a failed operation for the HTTP boundary.
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not-found"
	KindBadRequest   ErrorKind = "bad-request"
)

// Error is a caller-visible failure with a kind and message. Failures are
// surfaced synchronously and never leave partial mutations behind.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func badRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}
