package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account plus its profile document.
type User struct {
	ID                   uuid.UUID
	Email                string
	Name                 string
	PhotoURL             *string
	PasswordHash         *string
	GoogleID             *string
	NotificationsEnabled bool
	PushToken            *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DisplayName falls back to the email when the profile has no name yet.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
