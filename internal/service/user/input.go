package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

const maxPushTokenLen = 4096

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name     string
	PhotoURL *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.PhotoURL != nil && len(*i.PhotoURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "photo_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePushToken(token string) error {
	switch {
	case strings.TrimSpace(token) == "":
		return domain.NewValidationError("token", "required")
	case len(token) > maxPushTokenLen:
		return domain.NewValidationError("token", "too long")
	}
	return nil
}
