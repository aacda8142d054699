package httperr

import "errors"

// Kind classifies a failure so handlers can map it to a stable
// HTTP status without inspecting message text.
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindPermissionDenied   Kind = "permission_denied"
	KindInvalidArgument    Kind = "invalid_argument"
	KindNotFound           Kind = "not_found"
	KindFailedPrecondition Kind = "failed_precondition"
	KindInternal           Kind = "internal"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// --------------------------------------------------
// Constructors
// --------------------------------------------------

func ErrUnauthenticated(code, message string) *Error {
	return New(KindUnauthenticated, code, message)
}

func ErrPermissionDenied(code, message string) *Error {
	return New(KindPermissionDenied, code, message)
}

func ErrInvalidArgument(code, message string) *Error {
	return New(KindInvalidArgument, code, message)
}

func ErrNotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func ErrFailedPrecondition(code, message string) *Error {
	return New(KindFailedPrecondition, code, message)
}

// --------------------------------------------------
// Inspection
// --------------------------------------------------

// KindOf returns the kind carried by err. Anything that is not an
// *Error is treated as internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func IsCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
