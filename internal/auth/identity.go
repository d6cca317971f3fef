package auth

// GoogleIdentity is the account information carried by a verified Google ID token.
type GoogleIdentity struct {
	Subject    string
	Email      string
	Name       *string
	PictureURL *string
}
