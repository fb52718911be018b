// Package client talks to the activities API over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// APIError reports a completed call that the API answered with a non-2xx
// status. Detail is empty when the body carried no string detail.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("activities api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("activities api: status %d: %s", e.StatusCode, e.Detail)
}

// ActivityClient implements the three activities API calls.
type ActivityClient struct {
	baseURL string
	http    *http.Client
}

// New builds an ActivityClient rooted at baseURL. A zero timeout leaves the
// transport defaults in place. A nil httpClient uses a fresh http.Client.
func New(baseURL string, timeout time.Duration, httpClient *http.Client) *ActivityClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout > 0 {
		httpClient.Timeout = timeout
	}
	return &ActivityClient{baseURL: trimmed, http: httpClient}
}

// ListActivities fetches the full activity set.
func (c *ActivityClient) ListActivities(ctx context.Context) (model.ActivitySet, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, err
	}
	body, _, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	var set model.ActivitySet
	if err := set.UnmarshalJSON(body); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return set, nil
}

// SignUp registers email for activity and returns the server's message.
func (c *ActivityClient) SignUp(ctx context.Context, activity, email string) (string, error) {
	endpoint := SignUpPath(activity, email)
	return c.mutate(ctx, http.MethodPost, endpoint, "sign up")
}

// RemoveParticipant withdraws email from activity and returns the server's message.
func (c *ActivityClient) RemoveParticipant(ctx context.Context, activity, email string) (string, error) {
	endpoint := RemoveParticipantPath(activity, email)
	return c.mutate(ctx, http.MethodDelete, endpoint, "remove participant")
}

// SignUpPath builds the percent-encoded sign-up endpoint.
func SignUpPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?" + url.Values{"email": {email}}.Encode()
}

// RemoveParticipantPath builds the percent-encoded participant removal endpoint.
func RemoveParticipantPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/participants?" + url.Values{"email": {email}}.Encode()
}

func (c *ActivityClient) mutate(ctx context.Context, method, endpoint, op string) (string, error) {
	req, err := c.newRequest(ctx, method, endpoint)
	if err != nil {
		return "", err
	}
	body, status, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%s: status %d: response is not json", op, status)
	}
	if status < 200 || status > 299 {
		detail := gjson.GetBytes(body, "detail")
		apiErr := &APIError{StatusCode: status}
		if detail.Type == gjson.String {
			apiErr.Detail = detail.Str
		}
		return "", apiErr
	}
	var resp model.MessageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	return resp.Message, nil
}

func (c *ActivityClient) newRequest(ctx context.Context, method, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *ActivityClient) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// IsAPIError reports whether err carries an API status response and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
