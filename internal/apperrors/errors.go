// Package apperrors defines the error taxonomy shared by the booking
// pipeline and its provider clients. Each failure carries a Kind so HTTP
// handlers can map it to a status code without string matching.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure by the stage that produced it.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindAuthentication  Kind = "authentication"
	KindMeetingCreation Kind = "meeting_creation"
	KindCalendar        Kind = "calendar"
	KindNotification    Kind = "notification"
	KindConfiguration   Kind = "configuration"
)

// Error is a classified application error. Message is safe to return to
// HTTP callers; Err holds the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without an underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, or the empty Kind for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Message returns the caller-safe text for err: the Message of a classified
// error without its wrapped cause, or the raw error text when err carries no
// classification.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code its kind warrants.
// Unclassified errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
