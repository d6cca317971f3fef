package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical stored date format. Lexical order matches chronological order.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical stored time format.
	TimeLayout = "15:04"
)

// pickerDateLayout is what date pickers on the client produce.
const pickerDateLayout = "2/1/2006"

// NormalizeDate accepts YYYY-MM-DD or d/M/yyyy and returns YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, pickerDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("date %q: expected YYYY-MM-DD or D/M/YYYY", s)
}

// NormalizeTime accepts H:MM or HH:MM (24h) and returns HH:MM.
func NormalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("time %q: expected HH:MM", s)
	}
	return t.Format(TimeLayout), nil
}
