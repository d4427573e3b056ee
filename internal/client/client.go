package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated (public
// endpoints such as login and the testimonial list).
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mainly for tests and CLIs.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Observer is notified after every backend call. Wired to the Prometheus
// registry in production; nil disables observation.
type Observer func(method, path string, status int, duration time.Duration)

// Client is the shared HTTP client for the remote dashboard API. It
// attaches the bearer token, decodes the {success, message, data}
// envelope, and classifies failures into APIError. It never retries and
// never caches.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenSource
	Observe Observer
}

// New creates a client for the given API base URL.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
		Tokens:  tokens,
	}
}

// GetJSON performs a GET and decodes the envelope's data into out.
// fallback is the message used when the failure carries no server message.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out, fallback)
}

// PostJSON performs a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out, fallback)
}

// PatchJSON performs a PATCH with a JSON body.
func (c *Client) PatchJSON(ctx context.Context, path string, body any, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, body, out, fallback)
}

// PutJSON performs a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body any, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out, fallback)
}

// Delete performs a DELETE. out may be nil when the payload is not needed.
func (c *Client) Delete(ctx context.Context, path string, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out, fallback)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fallback, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out, fallback)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send executes the request and decodes the envelope. Non-2xx responses
// and envelopes with success=false become APIError carrying the server's
// message when one is present.
func (c *Client) send(req *http.Request, out any, fallback string) error {
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.observe(req.Method, req.URL.Path, 0, start)
		logging.Error("backend request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err.Error(),
		)
		return &APIError{Message: fallback, Err: err}
	}
	defer resp.Body.Close()
	c.observe(req.Method, req.URL.Path, resp.StatusCode, start)
	logging.Debug("backend call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fallback, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.buildHTTPError(resp.StatusCode, bodyBytes, fallback)
	}

	var envelope dtos.APIEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fallback, Err: err}
	}

	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = fallback
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: fallback, Err: err}
		}
	}

	return nil
}

// buildHTTPError extracts the server's message from a non-2xx body. The
// backend reports failures as {message: "..."} with any status code.
func (c *Client) buildHTTPError(status int, body []byte, fallback string) error {
	var serverErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &serverErr); err == nil && serverErr.Message != "" {
		return &APIError{StatusCode: status, Message: serverErr.Message}
	}
	return &APIError{StatusCode: status, Message: fallback}
}

func (c *Client) observe(method, path string, status int, start time.Time) {
	if c.Observe != nil {
		c.Observe(method, path, status, time.Since(start))
	}
}
