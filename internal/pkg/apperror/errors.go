// internal/pkg/apperror/errors.go
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to react to it (HTTP status mapping, retries)
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindLoginRequired
	KindConflict
	KindNotFound
	KindStorageUnavailable
	KindCorruptState
	KindPayment
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindAuth:
		return "AUTH"
	case KindLoginRequired:
		return "LOGIN_REQUIRED"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindStorageUnavailable:
		return "STORAGE_UNAVAILABLE"
	case KindCorruptState:
		return "CORRUPT_STATE"
	case KindPayment:
		return "PAYMENT"
	default:
		return "INTERNAL"
	}
}

// Error is the typed error returned by the domain services
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and code, so sentinel
// errors keep matching after Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Wrap returns a copy of e carrying cause
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func Auth(code, message string) *Error {
	return New(KindAuth, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Payment(code, message string) *Error {
	return New(KindPayment, code, message)
}

func LoginRequired(message string) *Error {
	return New(KindLoginRequired, "login_required", message)
}

// StorageUnavailable reports a failed read or write against the backing store
func StorageUnavailable(key string, err error) *Error {
	return &Error{
		Kind:    KindStorageUnavailable,
		Code:    "storage_unavailable",
		Message: fmt.Sprintf("storage unavailable for key %q", key),
		Err:     err,
	}
}

// CorruptState reports a persisted value that could not be decoded
func CorruptState(key string, err error) *Error {
	return &Error{
		Kind:    KindCorruptState,
		Code:    "corrupt_state",
		Message: fmt.Sprintf("corrupt persisted value for key %q", key),
		Err:     err,
	}
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf returns the code of the first *Error in err's chain
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
