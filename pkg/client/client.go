// Package client is the typed accessor layer over the HTTP API: one function
// per server operation, a fixed base URL, JSON bodies, and a single retry
// after a short delay when the hosting platform is cold-starting.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultTimeout = 30 * time.Second
	retryDelay     = 1 * time.Second
)

// APIError is a non-2xx response decoded into the server's error shape.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	http       *http.Client
	retryDelay time.Duration
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: defaultTimeout},
		retryDelay: retryDelay,
	}
}

// do issues the request, retrying exactly once after a fixed delay on a
// network-level failure or a 5xx response. 4xx responses are never retried,
// and neither is a second consecutive failure.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, headers map[string]string) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	var resp *http.Response
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		r, err := c.http.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			return decodeAPIError(r)
		}
		resp = r
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), 1), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return err
	}

	// 4xx is a permanent answer, never retried.
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	defer resp.Body.Close()
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError drains and closes the response, keeping the server's
// message when the body carries one.
func decodeAPIError(resp *http.Response) *APIError {
	defer resp.Body.Close()
	apiErr := &APIError{Status: resp.StatusCode}
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
		apiErr.Message = errBody.Message
	}
	return apiErr
}
