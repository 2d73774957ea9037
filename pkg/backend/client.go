package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultTimeout bounds a single extraction request, including the time the
// service spends fetching the target website.
const DefaultTimeout = 2 * time.Minute

var serviceURLPattern = regexp.MustCompile(`^(https?://[^/?#\s]+(?:/[^?#\s]*)?)$`)

// Client talks to an extraction service over HTTP.
//
// The service accepts POST {base}/extract with a JSON body {"url": "..."}.
// A 2xx response body is the document itself. Any other status carries
// either a JSON body {"stage": "fetch"|"extract", "message": "..."} or a
// plain-text error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the extraction service at baseURL. The
// transport keeps a small idle pool since requests are strictly sequential.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := ParseServiceURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        2,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// ParseServiceURL validates an extraction service base URL and returns it
// without a trailing slash. Only http and https are accepted, and query
// strings or fragments are rejected.
func ParseServiceURL(raw string) (string, error) {
	matches := serviceURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid extraction service URL %q: must be an http(s) URL without query or fragment", raw)
	}
	return strings.TrimRight(matches[1], "/"), nil
}

type extractRequest struct {
	URL string `json:"url"`
}

type serviceError struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// ExtractWebsiteStyles asks the service for the style guide of url. The
// request is made exactly once; retrying is left to the user.
func (c *Client) ExtractWebsiteStyles(ctx context.Context, url string) (string, error) {
	payload, err := json.Marshal(extractRequest{URL: url})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/markdown, text/plain, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return string(body), nil
	}

	return "", decodeServiceError(resp.StatusCode, body)
}

func decodeServiceError(statusCode int, body []byte) error {
	var se serviceError
	if err := json.Unmarshal(body, &se); err == nil && se.Message != "" {
		return &Error{Stage: se.Stage, Detail: se.Message}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Errorf("extraction service returned status %d", statusCode)
	}
	return errors.New(text)
}
