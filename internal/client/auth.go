package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// AuthResult is a successful sign-in: the access token and the signed-in user.
type AuthResult struct {
	AccessToken string
	User        domain.User
}

// RegisterRequest creates an account with its profile.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Photo    *domain.File
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

type userPayload struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	PhotoURL             *string   `json:"photoUrl"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	PushToken            *string   `json:"pushToken"`
	CreatedAt            time.Time `json:"createdAt"`
}

func (p userPayload) toDomain() domain.User {
	id, _ := uuid.Parse(p.ID)
	return domain.User{
		ID:                   id,
		Email:                p.Email,
		Name:                 p.Name,
		PhotoURL:             p.PhotoURL,
		NotificationsEnabled: p.NotificationsEnabled,
		PushToken:            p.PushToken,
		CreatedAt:            p.CreatedAt,
	}
}

// SignUp creates an email/password account without a profile.
func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	var out authPayload
	resp, err := c.request(c.http.R()).
		SetContext(ctx).
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&out).
		Post("/auth/signup")
	if err := checkResponse("sign up", resp, err); err != nil {
		return nil, err
	}
	return c.signedIn(out), nil
}

// Register creates an account and its profile, uploading the optional photo.
func (c *Client) Register(ctx context.Context, in RegisterRequest) (*AuthResult, error) {
	var out authPayload
	req := c.request(c.http.R()).
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"name":     in.Name,
			"email":    in.Email,
			"password": in.Password,
		}).
		SetResult(&out)
	if in.Photo != nil {
		req.SetMultipartField("photo", in.Photo.Name, in.Photo.ContentType, in.Photo.Body)
	}
	resp, err := req.Post("/auth/register")
	if err := checkResponse("register", resp, err); err != nil {
		return nil, err
	}
	return c.signedIn(out), nil
}

// SignIn signs in with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	var out authPayload
	resp, err := c.request(c.http.R()).
		SetContext(ctx).
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err := checkResponse("sign in", resp, err); err != nil {
		return nil, err
	}
	return c.signedIn(out), nil
}

// SignInWithGoogle exchanges a Google ID token for an access token.
func (c *Client) SignInWithGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	var out authPayload
	resp, err := c.request(c.http.R()).
		SetContext(ctx).
		SetBody(map[string]string{"idToken": idToken}).
		SetResult(&out).
		Post("/auth/google")
	if err := checkResponse("google sign in", resp, err); err != nil {
		return nil, err
	}
	return c.signedIn(out), nil
}

// signedIn stores the new token so later calls are authenticated.
func (c *Client) signedIn(p authPayload) *AuthResult {
	c.SetToken(p.AccessToken)
	return &AuthResult{AccessToken: p.AccessToken, User: p.User.toDomain()}
}
