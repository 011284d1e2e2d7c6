package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can map it to an HTTP status and the
// booking engine can decide whether a failure is a business rejection or an
// infrastructure fault.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindCapacity
	KindQuota
	KindInvalidState
	KindInfrastructure
)

type Error struct {
	Kind    Kind
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

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Capacity(message string) *Error {
	return &Error{Kind: KindCapacity, Message: message}
}

func Quota(message string) *Error {
	return &Error{Kind: KindQuota, Message: message}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func Infrastructure(message string, err error) *Error {
	return &Error{Kind: KindInfrastructure, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInfrastructure for plain errors so
// unexpected failures never masquerade as business rejections.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInfrastructure
}

// IsBusiness reports whether err is a business-rule rejection rather than an
// infrastructure fault.
func IsBusiness(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindValidation, KindConflict, KindCapacity, KindQuota, KindInvalidState:
		return true
	}
	return false
}

// HTTPStatus maps an error to the status code the dashboard expects.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict, KindCapacity, KindQuota, KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the user-facing message of err. Infrastructure faults get
// a generic message so internals never leak to the client.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInfrastructure {
		return e.Message
	}
	return "internal server error"
}
