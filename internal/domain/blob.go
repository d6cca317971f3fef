package domain

import "github.com/google/uuid"

// Blob key prefixes in the storage bucket.
const (
	ImagePrefix      = "images/"
	AttachmentPrefix = "attachments/"
	UserPhotoPrefix  = "user_photos/"
)

// NewImageKey returns a fresh key for an event image.
func NewImageKey() string {
	return ImagePrefix + uuid.NewString() + ".jpg"
}

// NewAttachmentKey returns a fresh key for an event attachment.
func NewAttachmentKey() string {
	return AttachmentPrefix + uuid.NewString()
}

// NewUserPhotoKey returns a fresh key for a profile photo.
func NewUserPhotoKey() string {
	return UserPhotoPrefix + uuid.NewString() + ".jpg"
}
