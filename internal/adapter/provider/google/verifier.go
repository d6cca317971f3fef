// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/auth"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

const tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Verifier checks ID tokens against Google's tokeninfo endpoint.
type Verifier struct {
	clientID   string
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a verifier that accepts tokens issued for clientID.
func NewVerifier(clientID string, logger *slog.Logger) *Verifier {
	return newVerifier(clientID, tokeninfoURL, logger)
}

func newVerifier(clientID, endpoint string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:   clientID,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "google_signin"),
	}
}

// tokeninfo booleans arrive as strings.
type tokeninfoResponse struct {
	Aud           string `json:"aud"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyIDToken validates idToken and returns the identity it carries.
// Rejected tokens wrap domain.ErrUnauthorized.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.endpoint+"?"+url.Values{"id_token": {idToken}}.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create tokeninfo request: %w", err)
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: unavailable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("google: invalid id token: %w", domain.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("google: unavailable: status %d", resp.StatusCode)
	}

	var info tokeninfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("google: invalid tokeninfo response: %w", err)
	}

	if info.Aud != v.clientID {
		v.log.WarnContext(ctx, "google token for another audience", slog.String("aud", info.Aud))
		return nil, fmt.Errorf("google: audience mismatch: %w", domain.ErrUnauthorized)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("google: token without subject or email: %w", domain.ErrUnauthorized)
	}
	if info.EmailVerified != "true" {
		return nil, fmt.Errorf("google: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.GoogleIdentity{Subject: info.Sub, Email: info.Email}
	if info.Name != "" {
		identity.Name = &info.Name
	}
	if info.Picture != "" {
		identity.PictureURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google token verified", slog.String("email", info.Email))

	return identity, nil
}

// doWithRetry retries once on 5xx or transport errors with a 500ms backoff.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return v.httpClient.Do(req)
}
