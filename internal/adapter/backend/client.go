package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/polkiloo/orderdesk/internal/pkg/requestid"
)

// Response is a successful backend reply.
type Response struct {
	StatusCode int
	Data       json.RawMessage
}

// Error describes a failed backend call.
// StatusCode is zero when the request never produced an HTTP response.
type Error struct {
	StatusCode int
	Detail     string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// Client exposes the verbs the console needs from the order backend.
type Client interface {
	Get(ctx context.Context, path string, params url.Values) (*Response, error)
	Post(ctx context.Context, path string, body any) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)
}

// Observer receives timing for every backend call.
type Observer interface {
	Started()
	Observe(method string, code int, elapsed time.Duration)
}

// Options tunes HTTPClient.
type Options struct {
	// Timeout bounds a single request; zero disables the limit.
	Timeout  time.Duration
	Headers  http.Header
	Observer Observer
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    *url.URL
	headers    http.Header
	httpClient *http.Client
	observer   Observer
	logger     *slog.Logger
}

// NewHTTPClient creates a client bound to baseURL.
func NewHTTPClient(baseURL string, opts Options, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}

	headers := http.Header{}
	for key, values := range opts.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}
	headers.Set("Accept", "application/json")

	return &HTTPClient{
		baseURL:    parsed,
		headers:    headers,
		httpClient: &http.Client{Timeout: opts.Timeout},
		observer:   opts.Observer,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured backend root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

// Get issues a GET. A nil params value sends no query string.
func (c *HTTPClient) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post issues a POST with body encoded as JSON.
func (c *HTTPClient) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Delete issues a DELETE.
func (c *HTTPClient) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) endpoint(path string, params url.Values) string {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	endpoint.RawPath = ""
	endpoint.RawQuery = ""
	if params != nil {
		endpoint.RawQuery = params.Encode()
	}
	return endpoint.String()
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: err.Error(), Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, params), reader)
	if err != nil {
		return nil, &Error{Message: err.Error(), Err: err}
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	if c.observer != nil {
		c.observer.Started()
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.finish(method, path, 0, start, err)
		return nil, &Error{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.finish(method, path, 0, start, err)
		return nil, &Error{Message: err.Error(), Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		callErr := &Error{
			StatusCode: resp.StatusCode,
			Detail:     detailOf(data),
			Message:    fmt.Sprintf("request failed with status code %d", resp.StatusCode),
		}
		c.finish(method, path, resp.StatusCode, start, callErr)
		return nil, callErr
	}

	c.finish(method, path, resp.StatusCode, start, nil)
	return &Response{StatusCode: resp.StatusCode, Data: json.RawMessage(data)}, nil
}

func (c *HTTPClient) finish(method, path string, code int, start time.Time, err error) {
	elapsed := time.Since(start)
	if c.observer != nil {
		c.observer.Observe(method, code, elapsed)
	}
	attrs := []any{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", code),
		slog.Duration("latency", elapsed),
	}
	if err != nil {
		c.logger.Warn("backend request failed", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	c.logger.Debug("backend request", attrs...)
}

// detailOf returns the detail field of a JSON error body when it is a string.
func detailOf(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
