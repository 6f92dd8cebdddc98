package graph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kutbudev/planner-mcp/internal/auth"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, auth.StaticTokenSource("test-token"))
}

func TestDoSendsAuthAndContentType(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))

	body, err := c.Do(context.Background(), http.MethodPost, c.BaseURL+"/x", map[string]any{"a": "b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["a"] != "b" {
		t.Errorf("body = %v", gotBody)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("response = %q, want it verbatim", body)
	}
}

func TestDoOmitsContentTypeWithoutBody(t *testing.T) {
	var gotContentType string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
	}))

	if _, err := c.Do(context.Background(), http.MethodGet, c.BaseURL+"/x", nil, nil); err != nil {
		t.Fatal(err)
	}
	if gotContentType != "" {
		t.Errorf("Content-Type = %q, want unset on bodyless request", gotContentType)
	}
}

func TestDoMergesExtraHeaders(t *testing.T) {
	var gotMatch string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMatch = r.Header.Get("If-Match")
	}))

	headers := map[string]string{"If-Match": `W/"etag-value"`}
	if _, err := c.Do(context.Background(), http.MethodPatch, c.BaseURL+"/x", map[string]any{}, headers); err != nil {
		t.Fatal(err)
	}
	if gotMatch != `W/"etag-value"` {
		t.Errorf("If-Match = %q, want the token passed through unaltered", gotMatch)
	}
}

func TestDoTransportError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"no access"}}`))
	}))

	_, err := c.Do(context.Background(), http.MethodGet, c.BaseURL+"/x", nil, nil)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if te.Status != http.StatusForbidden {
		t.Errorf("status = %d", te.Status)
	}
	if !strings.Contains(te.Body, "no access") {
		t.Errorf("body = %q, upstream message must be preserved", te.Body)
	}
}

func TestDoLargeResponseUntruncated(t *testing.T) {
	// Checklist-heavy tasks and long comment threads can be large; the
	// executor must hand back the full body.
	large := strings.Repeat("x", 12<<20)
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(large))
	}))

	body, err := c.Do(context.Background(), http.MethodGet, c.BaseURL+"/x", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(body) != len(large) {
		t.Errorf("got %d bytes, want %d", len(body), len(large))
	}
}

func TestDoTokenSourceFailure(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the network without a token")
	}))
	c.Tokens = auth.StaticTokenSource("")

	if _, err := c.Do(context.Background(), http.MethodGet, c.BaseURL+"/x", nil, nil); err == nil {
		t.Fatal("expected error")
	}
}
