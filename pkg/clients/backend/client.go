// Package backend is the resty client for the remote doceria backend API,
// the system of record for catalog, sales, configuration and users. The
// console never persists those entities itself.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/config"
	"github.com/marianadoces/console/internal/domain/models"
)

const loginPath = "/auth/login"

var (
	// ErrUnauthorized reports a rejected or expired session.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrNotFound reports a missing record.
	ErrNotFound = errors.New("backend: not found")
	// ErrNoSession reports an operation that needs a session when none is
	// held and no credentials are configured.
	ErrNoSession = errors.New("backend: no active session")
)

// APIError is a decoded backend error payload.
type APIError struct {
	Status  int
	Message string
	Details any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// Is maps HTTP statuses onto the package sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	default:
		return false
	}
}

// apiErrorPayload mirrors the backend's {error, details} error body.
type apiErrorPayload struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Session is the authenticated state against the backend. It exists only
// between a successful login and a logout or 401.
type Session struct {
	Token string
	User  models.User
}

// Client talks to the backend REST API. It owns the session lifecycle:
// login populates it, logout or any 401 clears it, and requests re-login
// with the configured service credentials when no session is held.
type Client struct {
	http   *resty.Client
	creds  models.LoginRequest
	logger *zap.Logger

	mu      sync.Mutex
	session *Session
}

// NewClient builds a backend API client from configuration.
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")

	c := &Client{
		creds:  models.LoginRequest{Email: cfg.Email, Password: cfg.Password},
		logger: logger,
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base + "/api").
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	restyClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if strings.HasSuffix(req.URL, loginPath) {
			return nil
		}
		if err := c.ensureSession(req.Context()); err != nil {
			return err
		}
		if session, ok := c.CurrentSession(); ok {
			req.SetHeader("Authorization", "Bearer "+session.Token)
		}
		return nil
	})

	restyClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			c.clearSession()
		}
		return nil
	})

	c.http = restyClient
	return c
}

// Login authenticates against the backend and populates the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	result := new(models.LoginResponse)
	apiErr := new(apiErrorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(result).
		SetError(apiErr).
		Post(loginPath)
	if err != nil {
		return nil, fmt.Errorf("backend login: %w", err)
	}
	if err := c.checkResponse(resp, apiErr); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = &Session{Token: result.Token, User: result.User}
	c.mu.Unlock()

	c.logger.Info("backend session established", zap.String("user", result.User.Email))
	return result, nil
}

// Logout discards the session. The backend keeps no server-side session
// state, so this is purely local.
func (c *Client) Logout() {
	c.clearSession()
}

// CurrentSession returns the held session, if any.
func (c *Client) CurrentSession() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Me fetches the account behind the current session.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	return doGet[models.User](ctx, c, "/auth/me", nil)
}

func (c *Client) ensureSession(ctx context.Context) error {
	if _, ok := c.CurrentSession(); ok {
		return nil
	}
	if c.creds.Email == "" {
		return ErrNoSession
	}
	if _, err := c.Login(ctx, c.creds.Email, c.creds.Password); err != nil {
		return err
	}
	return nil
}

func (c *Client) clearSession() {
	c.mu.Lock()
	had := c.session != nil
	c.session = nil
	c.mu.Unlock()
	if had {
		c.logger.Warn("backend session cleared")
	}
}

func (c *Client) checkResponse(resp *resty.Response, apiErr *apiErrorPayload) error {
	code := resp.StatusCode()
	if code < http.StatusBadRequest {
		return nil
	}

	message := ""
	var details any
	if apiErr != nil {
		message = apiErr.Error
		details = apiErr.Details
	}
	if message == "" {
		message = http.StatusText(code)
	}

	return &APIError{Status: code, Message: message, Details: details}
}

func doGet[T any](ctx context.Context, c *Client, path string, query map[string]string) (*T, error) {
	result := new(T)
	apiErr := new(apiErrorPayload)

	req := c.http.R().SetContext(ctx).SetResult(result).SetError(apiErr)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("backend get %s: %w", path, err)
	}
	if err := c.checkResponse(resp, apiErr); err != nil {
		return nil, err
	}
	return result, nil
}

func doPost[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	result := new(T)
	apiErr := new(apiErrorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(apiErr).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("backend post %s: %w", path, err)
	}
	if err := c.checkResponse(resp, apiErr); err != nil {
		return nil, err
	}
	return result, nil
}

func doPut[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	result := new(T)
	apiErr := new(apiErrorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(apiErr).
		Put(path)
	if err != nil {
		return nil, fmt.Errorf("backend put %s: %w", path, err)
	}
	if err := c.checkResponse(resp, apiErr); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) doDelete(ctx context.Context, path string) error {
	apiErr := new(apiErrorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(path)
	if err != nil {
		return fmt.Errorf("backend delete %s: %w", path, err)
	}
	return c.checkResponse(resp, apiErr)
}
