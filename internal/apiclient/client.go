// Implements a typed Go client for the admin REST API.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chembot/admin/internal/server/dto"
)

// Client is a typed client for the admin API. The zero value is not usable;
// use NewClient.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do performs an HTTP request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= 400 {
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Code == "" {
			return &APIError{
				Status:  resp.StatusCode,
				ErrCode: dto.ErrorCodeInternal,
				Message: string(respBody),
			}
		}
		return &APIError{
			Status:  resp.StatusCode,
			ErrCode: errResp.Error.Code,
			Message: errResp.Error.Message,
			Details: errResp.Details,
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListOptions carries the shared list parameters.
type ListOptions struct {
	Q     string
	Page  int
	Limit int
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Q != "" {
		v.Set("q", o.Q)
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	return v
}

func encodeQuery(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// --- Auth ---

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	out := &dto.AuthResponse{}
	req := &dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return out, nil
}

// Logout revokes the current session and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	out := &dto.UserResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUserSettings updates per-user preferences.
func (c *Client) UpdateUserSettings(ctx context.Context, req *dto.UpdateUserSettingsRequest) (*dto.UserResponse, error) {
	out := &dto.UserResponse{}
	if err := c.do(ctx, http.MethodPut, "/api/auth/settings", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health returns the server health status. No authentication required.
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	out := &dto.HealthResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
