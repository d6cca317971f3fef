package session

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/eventorias-backend/internal/client"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

var errGoogleCancelled = errors.New("google sign-in cancelled")

type googleFlowError struct {
	err error
}

func (e *googleFlowError) Error() string { return "google sign-in: " + e.err.Error() }

func (e *googleFlowError) Unwrap() error { return e.err }

// failureMessage turns an attempt error into the message shown to the user.
func failureMessage(op string, err error) string {
	var flowErr *googleFlowError
	var apiErr *client.APIError
	switch {
	case errors.Is(err, errGoogleCancelled):
		return errGoogleCancelled.Error()
	case errors.As(err, &flowErr):
		return flowErr.Error()
	case errors.Is(err, domain.ErrUnauthorized) && op == "google sign in":
		return "google account was rejected"
	case errors.Is(err, domain.ErrUnauthorized):
		return "invalid email or password"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "an account already exists for this email"
	case errors.Is(err, domain.ErrUploadFailed):
		return "profile photo upload failed"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return fmt.Sprintf("%s failed: %v", op, err)
	}
}
