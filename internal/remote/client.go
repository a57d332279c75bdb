package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/locvowork/hr_dashboard_sample/internal/domain"
)

// usersResponse is the envelope returned by the user API.
type usersResponse struct {
	Users []domain.RawUser `json:"users"`
	Total int              `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
}

// Client fetches raw user batches from a dummyjson-compatible user API.
// It implements domain.EmployeeSource.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the user API at baseURL. The timeout bounds
// the whole request so a hung remote surfaces as an error instead of leaving
// the caller loading forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch requests a single batch of up to limit users.
func (c *Client) Fetch(ctx context.Context, limit int) ([]domain.RawUser, error) {
	u, err := url.Parse(c.baseURL + "/users")
	if err != nil {
		return nil, fmt.Errorf("invalid user API URL: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user API returned status %d", resp.StatusCode)
	}

	var body usersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	return body.Users, nil
}
