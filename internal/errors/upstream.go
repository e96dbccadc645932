package errors

import (
	"context"
	"errors"
	"net/http"
)

// MapUpstreamError maps REST-layer failures to AppError instances so the
// view resolver only ever sees application error codes.
func MapUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "The data service did not respond in time.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: "The data service is unavailable.",
		Cause:   err,
	}
}

// FromStatusCode converts a non-2xx upstream HTTP status into an AppError.
func FromStatusCode(status int) *AppError {
	switch {
	case status == http.StatusNotFound:
		return NotFound("The requested model does not exist.")
	case status == http.StatusBadRequest:
		return Validation("The data service rejected the request.")
	case status >= http.StatusInternalServerError:
		return Unavailablef("The data service returned status %d.", status)
	default:
		return Internalf("Unexpected data service status %d.", status)
	}
}
