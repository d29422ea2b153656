// Package apperr holds the precondition failures checked at the HTTP boundary
// and their mapping to status codes. The store itself never fails; absence is
// reported as a normal result.
package apperr

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoCurrentUser   = errors.New("no current user")
	ErrEmptyContent    = errors.New("message content cannot be empty")
	ErrSelfMessage     = errors.New("cannot send a message to yourself")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotFound        = errors.New("conversation not found")
	ErrNotParticipant  = errors.New("not a participant of this conversation")
	ErrInvalidBody     = errors.New("invalid request body")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Status maps err to an HTTP status code.
func Status(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrNoCurrentUser):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyContent), errors.Is(err, ErrSelfMessage),
		errors.Is(err, ErrInvalidBody), errors.Is(err, ErrInvalidArgument),
		errors.As(err, &verrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Write reports err to the client with the matching status code.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
