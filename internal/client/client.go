// Package client is the HTTP client for the Eventorias REST API used by the
// command line tool.
package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client calls the REST API. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	stream *resty.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every non-streaming request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithHTTPClient swaps the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc).SetBaseURL(c.http.BaseURL).SetTimeout(defaultTimeout)
		c.stream = resty.NewWithClient(hc).SetBaseURL(c.stream.BaseURL)
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(baseURL, "/")
	c := &Client{
		http: resty.New().
			SetBaseURL(base).
			SetHeader("Accept", "application/json").
			SetTimeout(defaultTimeout),
		// Streams stay open indefinitely; only the context ends them.
		stream: resty.New().SetBaseURL(base),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the access token sent with every request. An empty token
// makes requests anonymous.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current access token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) request(r *resty.Request) *resty.Request {
	if token := c.Token(); token != "" {
		r.SetAuthToken(token)
	}
	return r.SetError(&errorPayload{})
}

type errorPayload struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

// APIError is a non-2xx answer from the server. It matches the domain
// sentinel for its status with errors.Is.
type APIError struct {
	Status  int
	Message string
	Fields  []domain.FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + ": " + f.Message
		}
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, ", "))
	}
	return e.Message
}

// Is maps HTTP statuses onto domain sentinel errors.
func (e *APIError) Is(target error) bool {
	switch e.Status {
	case http.StatusBadRequest:
		return target == domain.ErrValidation
	case http.StatusUnauthorized:
		return target == domain.ErrUnauthorized
	case http.StatusNotFound:
		return target == domain.ErrNotFound
	case http.StatusConflict:
		return target == domain.ErrAlreadyExists || target == domain.ErrConflict
	case http.StatusBadGateway:
		return target == domain.ErrUploadFailed
	}
	return false
}

func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	if p, ok := resp.Error().(*errorPayload); ok && p.Error != "" {
		apiErr.Message = p.Error
		for _, f := range p.Fields {
			apiErr.Fields = append(apiErr.Fields, domain.FieldError{Field: f.Field, Message: f.Message})
		}
	}
	return fmt.Errorf("%s: %w", op, apiErr)
}

// IsAPIError reports whether err carries a server answer with the given status.
func IsAPIError(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
