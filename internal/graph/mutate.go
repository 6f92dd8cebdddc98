package graph

import (
	"context"
	"errors"
	"net/http"
)

// Guarded writes are the core protocol: read the resource's current ETag,
// send the delta with If-Match, and surface any rejection as a conflict.
// Not a transaction: an external writer can land between the read and the
// write, and when it does the upstream rejects the stale token. That
// rejection is never retried here, because the delta was decided against
// state that no longer exists.

// guardedPatch fetches a fresh token for url and PATCHes the delta under
// If-Match. The token is passed through exactly as received; header-value
// escaping is net/http's concern, not ours. Returns the raw response body,
// which may legitimately be empty.
func (c *Client) guardedPatch(ctx context.Context, url string, delta map[string]any) ([]byte, error) {
	etag, err := c.fetchEtag(ctx, url)
	if err != nil {
		return nil, err
	}
	body, err := c.Do(ctx, http.MethodPatch, url, delta, map[string]string{"If-Match": etag})
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			return nil, &MutationConflictError{URL: url, Err: err}
		}
		return nil, err
	}
	return body, nil
}

// guardedDelete mirrors guardedPatch for DELETE.
func (c *Client) guardedDelete(ctx context.Context, url string) error {
	etag, err := c.fetchEtag(ctx, url)
	if err != nil {
		return err
	}
	if _, err := c.Do(ctx, http.MethodDelete, url, nil, map[string]string{"If-Match": etag}); err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			return &MutationConflictError{URL: url, Err: err}
		}
		return err
	}
	return nil
}
