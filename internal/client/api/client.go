// Package api implements the HTTP client for the auth service endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mp28jam28/board-auth/internal/common"
)

const requestTimeout = 10 * time.Second

// Client calls the auth service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// RegisterParams carries the registration fields. Department and Role may be
// empty.
type RegisterParams struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

// TokenClaims is the user object returned by a successful verification.
type TokenClaims struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	ExpiresAt  int64  `json:"exp"`
}

func (c *Client) postJSON(ctx context.Context, path string, in any, out any) (int, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}

	return resp.StatusCode, nil
}

// mapStatus converts an HTTP status to the shared sentinel errors.
func mapStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return common.ErrorMissingField
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusConflict:
		return common.ErrorAlreadyExists
	default:
		return fmt.Errorf("%w: unexpected status %d", common.ErrorInternal, status)
	}
}

// Health probes GET /health.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mapStatus(resp.StatusCode)
	}
	return nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, params RegisterParams) error {
	status, err := c.postJSON(ctx, "/register", params, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return mapStatus(status)
	}
	return nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}

	status, err := c.postJSON(ctx, "/login",
		map[string]string{"username": username, "password": password}, &out)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", mapStatus(status)
	}

	return out.Token, nil
}

// Verify checks a session token and returns the claims embedded in it.
func (c *Client) Verify(ctx context.Context, token string) (*TokenClaims, error) {
	var out struct {
		Message string      `json:"message"`
		User    TokenClaims `json:"user"`
	}

	status, err := c.postJSON(ctx, "/verify", map[string]string{"token": token}, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, mapStatus(status)
	}

	return &out.User, nil
}
