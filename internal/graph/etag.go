package graph

import (
	"context"
	"encoding/json"
)

// etagField is the contractual name of the concurrency token on every
// Planner resource.
const etagField = "@odata.etag"

// fetchEtag reads the resource at url and extracts its current concurrency
// token. The token is opaque and valid only for the immediately following
// write to the same resource; callers must never reuse it across resources
// or calls. A failed GET or a missing field (concurrent delete, wrong
// endpoint) is a *TokenFetchError.
func (c *Client) fetchEtag(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", &TokenFetchError{URL: url, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", &TokenFetchError{URL: url, Err: err}
	}

	raw, ok := fields[etagField]
	if !ok {
		return "", &TokenFetchError{URL: url}
	}
	var etag string
	if err := json.Unmarshal(raw, &etag); err != nil {
		return "", &TokenFetchError{URL: url, Err: err}
	}
	if etag == "" {
		return "", &TokenFetchError{URL: url}
	}
	return etag, nil
}
