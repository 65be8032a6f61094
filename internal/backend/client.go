package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/rentdesk/portal/internal/session"
)

// APIError is a non-2xx response from the backend. Message carries the
// backend's `{"error": ...}` body verbatim so screens can surface it to the
// user unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (%d)", e.Status)
	}
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// Client manages communication with the property-management REST backend.
// One instance is shared by every screen; the base URL comes from config and
// is never overridden per call.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

// NewClient builds a client for the given base URL. There is deliberately no
// retry policy: the UI layer surfaces failures inline and lets the user
// resubmit.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid baseURL: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:    parsed,
		HTTPClient: &http.Client{Timeout: timeout},
	}, nil
}

// do builds, executes, and parses one request. The session, when present, is
// forwarded as X-User-ID / X-User-Role headers — the one auth-transport
// mechanism used for every backend call.
func (c *Client) do(ctx context.Context, method, reqPath string, query url.Values, body any, out any, s *session.Session) error {
	u := *c.BaseURL
	u.Path = path.Join(c.BaseURL.Path, reqPath)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s != nil {
		req.Header.Set("X-User-ID", strconv.FormatInt(s.UserID, 10))
		req.Header.Set("X-User-Role", s.Role)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleHTTPError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleHTTPError parses the backend's error body. The known shape is
// {"error": "message"}; anything else becomes a trimmed raw-body message.
func (c *Client) handleHTTPError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(bodyBytes, &apiErr); err != nil || apiErr.Error == "" {
		apiErr.Error = strings.TrimSpace(string(bodyBytes))
	}

	return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
}
