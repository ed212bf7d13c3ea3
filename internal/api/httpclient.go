package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// DefaultTimeout is the fixed per-request timeout applied to every call.
// There is no per-call override and no retry.
const DefaultTimeout = 10 * time.Second

// TokenSource supplies the current bearer credential. An empty string means
// "not authenticated" and no Authorization header is sent.
type TokenSource func(ctx context.Context) string

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	tokenSource    TokenSource
	onUnauthorized func(ctx context.Context)
}

// NewHTTPClient constructs an HTTPClient against baseURL (e.g.
// "http://localhost:8081/api/v1"). tokens may be nil for an anonymous client.
func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: DefaultTimeout},
		tokenSource: tokens,
	}
}

// OnUnauthorized registers fn to run whenever any endpoint returns 401.
// It is called before the error is returned to the caller, regardless of
// which logical operation issued the request. Register once at startup.
func (c *HTTPClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

// do performs one round trip: marshal body (if any), send with auth and
// request-id headers, decode the envelope, map failures. On success the
// envelope's data payload is unmarshalled into out (if out is non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokenSource != nil {
		if token := c.tokenSource(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}

	if out != nil {
		if env.Data == nil {
			return fmt.Errorf("response envelope has no data payload")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response payload: %w", err)
		}
	}
	return nil
}

// loginPayload is the wire form of a login request. The identifier is sent
// as either username or email depending on the caller-selected mode.
type loginPayload struct {
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegistrationRequest) (*models.RegistrationResult, error) {
	var result models.RegistrationResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	payload := loginPayload{Password: req.Password, RememberMe: req.RememberMe}
	if req.Mode == models.LoginModeEmail {
		payload.Email = req.Identifier
	} else {
		payload.Username = req.Identifier
	}

	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResult, error) {
	var result models.RefreshResult
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-email", map[string]string{"token": token}, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", req, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/users/change-password", req, nil)
}
