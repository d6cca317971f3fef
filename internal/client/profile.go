package client

import (
	"context"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// Profile returns the signed-in user.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out userPayload
	resp, err := c.request(c.http.R()).
		SetContext(ctx).
		SetResult(&out).
		Get("/profile")
	if err := checkResponse("profile", resp, err); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

// SetNotifications opts in with the device token, or opts out when enabled
// is false.
func (c *Client) SetNotifications(ctx context.Context, enabled bool, token string) (*domain.User, error) {
	body := map[string]any{"enabled": enabled}
	if enabled {
		body["token"] = token
	}
	return c.putProfile(ctx, "notifications", "/profile/notifications", body)
}

// UpdatePushToken replaces the device token while notifications are enabled.
func (c *Client) UpdatePushToken(ctx context.Context, token string) (*domain.User, error) {
	return c.putProfile(ctx, "push token", "/profile/push-token", map[string]string{"token": token})
}

func (c *Client) putProfile(ctx context.Context, op, path string, body any) (*domain.User, error) {
	var out userPayload
	resp, err := c.request(c.http.R()).
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Put(path)
	if err := checkResponse(op, resp, err); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}
