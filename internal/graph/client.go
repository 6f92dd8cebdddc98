// Package graph implements the Planner protocol against the Microsoft
// Graph API: plain reads pass straight through, while every mutation runs
// the ETag-guarded read-then-patch choreography with a delta payload that
// the upstream merges server-side.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kutbudev/planner-mcp/internal/auth"
)

// Client executes authenticated requests against the Graph API and carries
// the per-operation Planner methods. It holds no session state beyond the
// injected token source.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     auth.TokenSource
}

// NewClient builds a client for the given base URL and token source.
func NewClient(baseURL string, timeout time.Duration, tokens auth.TokenSource) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
	}
}

// Do performs one authenticated round trip. The body, when non-nil, is
// JSON-serialized and sent with Content-Type: application/json; extra
// headers are merged on top (used for If-Match on guarded writes). The raw
// response body is returned on any 2xx status, verbatim and untruncated;
// everything else becomes a *TransportError carrying the upstream message.
func (c *Client) Do(ctx context.Context, method, url string, body any, headers map[string]string) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire access token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// get is a bare GET with no extra headers.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, url, nil, nil)
}

// decodeJSON unmarshals a response body into T.
func decodeJSON[T any](body []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON GETs and decodes into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", url, err)
	}
	return nil
}
