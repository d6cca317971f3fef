package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt limit
	maxNameLen     = 100
)

// SignUpInput creates an email/password account.
type SignUpInput struct {
	Email    string
	Password string
}

func (i *SignUpInput) normalize() {
	i.Email = normalizeEmail(i.Email)
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	errs := validateCredentials(i.Email, i.Password)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterInput creates an account together with its profile.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Photo    *domain.File
}

func (i *RegisterInput) normalize() {
	i.Email = normalizeEmail(i.Email)
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	errs := validateCredentials(i.Email, i.Password)

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(i.Name) > maxNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Photo != nil && i.Photo.Body == nil {
		errs = append(errs, domain.FieldError{Field: "photo", Message: "empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SignInInput authenticates with email and password.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GoogleSignInInput carries the ID token obtained by the client from Google.
type GoogleSignInInput struct {
	IDToken string
}

// Validate validates the Google sign-in input.
func (i GoogleSignInInput) Validate() error {
	switch {
	case i.IDToken == "":
		return domain.NewValidationError("id_token", "required")
	case len(i.IDToken) > 4096:
		return domain.NewValidationError("id_token", "too long")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) []domain.FieldError {
	var errs []domain.FieldError

	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	switch {
	case password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	case len(password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	return errs
}
