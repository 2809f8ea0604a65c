package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/carllingstrom/AI-Delning-sub000/internal/db"
)

// ErrInvalidID indicates a path ID that is not a UUID
type ErrInvalidID struct {
	Value string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid project id: %q", e.Value)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnreadableProject indicates a stored record whose data cannot be decoded
type ErrUnreadableProject struct {
	Err error
}

func (e *ErrUnreadableProject) Error() string {
	return fmt.Sprintf("stored project is unreadable: %v", e.Err)
}

func (e *ErrUnreadableProject) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidID  *ErrInvalidID
		validation *ErrValidation
		unreadable *ErrUnreadableProject
	)
	switch {
	case errors.As(err, &invalidID), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.As(err, &unreadable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validationError converts validator output to an ErrValidation for the first
// failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
