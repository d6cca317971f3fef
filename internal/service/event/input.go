package event

import (
	"strings"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// CreateEventInput is the draft submitted from the creation form.
type CreateEventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Address     string
	Image       *domain.File
	Attachment  *domain.File
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		field string
		value string
	}{
		{"title", i.Title},
		{"description", i.Description},
		{"date", i.Date},
		{"time", i.Time},
		{"address", i.Address},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}

	if strings.TrimSpace(i.Date) != "" {
		if _, err := domain.NormalizeDate(i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "expected YYYY-MM-DD or D/M/YYYY"})
		}
	}
	if strings.TrimSpace(i.Time) != "" {
		if _, err := domain.NormalizeTime(i.Time); err != nil {
			errs = append(errs, domain.FieldError{Field: "time", Message: "expected HH:MM"})
		}
	}

	if i.Image != nil && i.Image.Body == nil {
		errs = append(errs, domain.FieldError{Field: "image", Message: "empty file"})
	}
	if i.Attachment != nil && i.Attachment.Body == nil {
		errs = append(errs, domain.FieldError{Field: "attachment", Message: "empty file"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// draft returns the event fields in canonical form. Validate must pass first.
func (i CreateEventInput) draft() domain.Event {
	date, _ := domain.NormalizeDate(i.Date)
	tm, _ := domain.NormalizeTime(i.Time)
	return domain.Event{
		Title:       strings.TrimSpace(i.Title),
		Description: strings.TrimSpace(i.Description),
		Date:        date,
		Time:        tm,
		Address:     strings.TrimSpace(i.Address),
	}
}
