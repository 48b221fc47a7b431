package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
)

// SubmissionFetcher is implemented by *Client and replaced in tests.
type SubmissionFetcher interface {
	UserStatus(ctx context.Context, handle string, from, count int) ([]domain.Submission, error)
}

var _ SubmissionFetcher = (*Client)(nil)

const (
	DefaultEndpoint       = "https://codeforces.com"
	DefaultTimeout        = 15 * time.Second
	DefaultMaxSubmissions = 10000
	defaultUserAgent      = "cptrack/0.1"

	// maxErrorBody bounds how much of a failed response is read for its comment.
	maxErrorBody = 64 << 10
)

// Client talks to the Codeforces HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for endpoint. An empty endpoint means the public
// API; a non-positive timeout means DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// UserStatus fetches up to count submissions of handle starting at the
// 1-based position from, newest first.
func (c *Client) UserStatus(ctx context.Context, handle string, from, count int) ([]domain.Submission, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrEmptyHandle
	}
	if from < 1 {
		from = 1
	}
	if count <= 0 {
		count = DefaultMaxSubmissions
	}

	values := url.Values{}
	values.Set("handle", handle)
	values.Set("from", strconv.Itoa(from))
	values.Set("count", strconv.Itoa(count))
	rel := &url.URL{Path: "/api/user.status", RawQuery: values.Encode()}

	var wire []Submission
	if err := c.doURL(ctx, rel, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Submission, len(wire))
	for i, s := range wire {
		out[i] = s.ToDomain()
	}
	return out, nil
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &NetworkError{
			StatusCode: resp.StatusCode,
			Comment:    commentFrom(body),
			Err:        fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Status != "OK" {
		return &NetworkError{Comment: env.Comment, Err: fmt.Errorf("api status %q", env.Status)}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, dest); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}

// commentFrom extracts the envelope comment from an error body, if it is one.
func commentFrom(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Comment
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse codeforces endpoint %q: %w", endpoint, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
