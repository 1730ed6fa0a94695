// Package client is a Go client for the job board API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("job board API error: %d %s", e.StatusCode, e.Message)
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithToken starts the client with an existing bearer token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// Client calls the job board API. The bearer token set by Register,
// Login or SetToken is attached to every request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a client for the API served at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates an account and keeps its token
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Login signs in and keeps the token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Me returns the signed-in account
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListJobs returns postings matching filter
func (c *Client) ListJobs(ctx context.Context, filter JobFilter) ([]Job, error) {
	q := url.Values{}
	for key, value := range map[string]string{
		"search":     filter.Search,
		"location":   filter.Location,
		"department": filter.Department,
		"jobType":    filter.JobType,
		"status":     filter.Status,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}

	path := "/api/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Jobs []Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// GetJob returns one posting
func (c *Client) GetJob(ctx context.Context, id uint) (*Job, error) {
	var resp struct {
		Job Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Job, nil
}

// CreateJob stores a posting and returns its id (admin)
func (c *Client) CreateJob(ctx context.Context, req JobRequest) (uint, error) {
	var resp struct {
		JobID uint `json:"jobId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/jobs", req, &resp); err != nil {
		return 0, err
	}
	return resp.JobID, nil
}

// UpdateJob replaces a posting (admin)
func (c *Client) UpdateJob(ctx context.Context, id uint, req JobRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), req, nil)
}

// DeleteJob removes a posting (admin)
func (c *Client) DeleteJob(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
}

// Apply submits an application and returns its id
func (c *Client) Apply(ctx context.Context, req ApplyRequest) (uint, error) {
	var resp struct {
		ApplicationID uint `json:"applicationId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/applications", req, &resp); err != nil {
		return 0, err
	}
	return resp.ApplicationID, nil
}

// MyApplications returns the signed-in user's applications
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	return c.applications(ctx, "/api/applications/my")
}

// ListApplications returns every application (admin)
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	return c.applications(ctx, "/api/applications")
}

func (c *Client) applications(ctx context.Context, path string) ([]Application, error) {
	var resp struct {
		Applications []Application `json:"applications"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Applications, nil
}

// GetApplication returns one application with its feedback
func (c *Client) GetApplication(ctx context.Context, id uint) (*Application, error) {
	var resp struct {
		Application Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/applications/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Application, nil
}

// UpdateApplicationStatus sets an application's status (admin)
func (c *Client) UpdateApplicationStatus(ctx context.Context, id uint, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/applications/%d/status", id), body, nil)
}

// AddFeedback attaches a message to an application and returns the feedback id
func (c *Client) AddFeedback(ctx context.Context, applicationID uint, message string) (uint, error) {
	body := map[string]string{"message": message}

	var resp struct {
		FeedbackID uint `json:"feedbackId"`
	}
	path := fmt.Sprintf("/api/applications/%d/feedback", applicationID)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return 0, err
	}
	return resp.FeedbackID, nil
}

// ListUsers returns every account (admin)
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// GetProfile returns the signed-in account and its profile
func (c *Client) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile creates or replaces the signed-in user's profile
func (c *Client) UpdateProfile(ctx context.Context, req ProfileRequest) error {
	return c.do(ctx, http.MethodPut, "/api/users/profile", req, nil)
}

// AddExperience adds an experience entry and returns its id
func (c *Client) AddExperience(ctx context.Context, req ExperienceRequest) (uint, error) {
	var resp struct {
		ExperienceID uint `json:"experienceId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/experience", req, &resp); err != nil {
		return 0, err
	}
	return resp.ExperienceID, nil
}

// UpdateExperience replaces an experience entry
func (c *Client) UpdateExperience(ctx context.Context, id uint, req ExperienceRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/experience/%d", id), req, nil)
}

// DeleteExperience removes an experience entry
func (c *Client) DeleteExperience(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/experience/%d", id), nil, nil)
}

// AddEducation adds an education entry and returns its id
func (c *Client) AddEducation(ctx context.Context, req EducationRequest) (uint, error) {
	var resp struct {
		EducationID uint `json:"educationId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/education", req, &resp); err != nil {
		return 0, err
	}
	return resp.EducationID, nil
}

// UpdateEducation replaces an education entry
func (c *Client) UpdateEducation(ctx context.Context, id uint, req EducationRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/education/%d", id), req, nil)
}

// DeleteEducation removes an education entry
func (c *Client) DeleteEducation(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/education/%d", id), nil, nil)
}

// Health reports whether the API and its database are up
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Helper function to send a JSON request and decode a JSON answer into out
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errorResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errorResp); err == nil && errorResp.Message != "" {
			apiErr.Message = errorResp.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
