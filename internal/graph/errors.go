package graph

import "fmt"

// TransportError is any non-2xx response or network-level failure from the
// Graph API. The body is kept verbatim so callers can surface the upstream
// message to the agent.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("graph request failed: %v", e.Err)
	}
	return fmt.Sprintf("graph request failed with status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TokenFetchError means the ETag read that precedes a guarded write failed,
// either because the GET itself failed or because the resource carried no
// @odata.etag field (typically a concurrent delete).
type TokenFetchError struct {
	URL string
	Err error
}

func (e *TokenFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch concurrency token for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("resource at %s has no concurrency token", e.URL)
}

func (e *TokenFetchError) Unwrap() error { return e.Err }

// MutationConflictError is a guarded write rejected by the upstream, most
// often because the ETag went stale between the read and the write. Never
// retried here: the caller decided on state that no longer exists and must
// re-read before reapplying.
type MutationConflictError struct {
	URL string
	Err error
}

func (e *MutationConflictError) Error() string {
	return fmt.Sprintf("update of %s was rejected: %v", e.URL, e.Err)
}

func (e *MutationConflictError) Unwrap() error { return e.Err }

// EmptyConversationError reports a task whose conversation reference points
// at a conversation with zero threads, an inconsistent but observed upstream
// state.
type EmptyConversationError struct {
	ConversationID string
}

func (e *EmptyConversationError) Error() string {
	return fmt.Sprintf("conversation %s exists but contains no threads", e.ConversationID)
}

// ValidationError is a parameter rejected before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
