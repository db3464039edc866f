// Package client provides a small HTTP client for the CourseHub API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenStore supplies the bearer token for authenticated requests. The
// client reads the token on every call, so rotating the stored token takes
// effect immediately without rebuilding the client.
type TokenStore interface {
	Token() string
}

// StaticToken is a TokenStore holding a fixed token string.
type StaticToken string

// Token returns the static token value.
func (t StaticToken) Token() string { return string(t) }

// MemoryTokenStore is a concurrency-safe mutable TokenStore.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// Token returns the currently stored token.
func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the stored token.
func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Client is a thin wrapper over the CourseHub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore sets the token source for authenticated calls.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

// New creates a Client for the API at baseURL, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
}

// APIError is the error payload returned by the API.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// StatusError is returned when the API responds with a non-2xx status and no
// structured error body.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Token holds the credentials returned by login and register.
type Token struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// User is the public user representation.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName,omitempty"`
}

// AuthResult bundles the token and user returned by auth operations.
type AuthResult struct {
	Token Token `json:"token"`
	User  User  `json:"user"`
}

// Course is the public course representation.
type Course struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Price          float64 `json:"price"`
	LearningObject *string `json:"learningObject,omitempty"`
	UserID         int64   `json:"userId"`
	IsFeatured     bool    `json:"isFeatured"`
}

// do issues a request, attaching the bearer token when a store is set, and
// decodes the response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// The token is re-read from the store on every request
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &StatusError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if env.Error != nil {
			return env.Error
		}
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// RegisterParams are the fields required to register a new account.
type RegisterParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Register creates a new account and returns the issued credentials.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchCourses lists the course catalog.
func (c *Client) FetchCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.do(ctx, http.MethodGet, "/api/v1/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FetchCourseByID retrieves a single course.
func (c *Client) FetchCourseByID(ctx context.Context, id int64) (*Course, error) {
	var course Course
	path := fmt.Sprintf("/api/v1/courses/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
