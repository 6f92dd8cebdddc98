package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestUpdateTaskGuardedPatch(t *testing.T) {
	var patchMatch string
	var patchBody map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/tasks/T1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"T1","planId":"P1","title":"x","@odata.etag":"W/\"abc\""}`)
	})
	mux.HandleFunc("PATCH /v1.0/planner/tasks/T1", func(w http.ResponseWriter, r *http.Request) {
		patchMatch = r.Header.Get("If-Match")
		_ = json.NewDecoder(r.Body).Decode(&patchBody)
		w.WriteHeader(http.StatusNoContent)
	})
	c := plannerClient(t, mux)

	pc := 100
	body, err := c.UpdateTask(context.Background(), "T1", TaskUpdate{PercentComplete: &pc})
	if err != nil {
		t.Fatal(err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, upstream sent no content", body)
	}
	if patchMatch != `W/"abc"` {
		t.Errorf("If-Match = %q, want the freshly fetched token", patchMatch)
	}
	if len(patchBody) != 1 || patchBody["percentComplete"] != float64(100) {
		t.Errorf("delta = %v, want only percentComplete", patchBody)
	}
}

func TestTaskAndDetailsTokensNotInterchanged(t *testing.T) {
	var detailsMatch string
	taskGets := 0

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/tasks/T1", func(w http.ResponseWriter, r *http.Request) {
		taskGets++
		fmt.Fprint(w, `{"id":"T1","@odata.etag":"W/\"task-token\""}`)
	})
	mux.HandleFunc("GET /v1.0/planner/tasks/T1/details", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"T1","@odata.etag":"W/\"details-token\""}`)
	})
	mux.HandleFunc("PATCH /v1.0/planner/tasks/T1/details", func(w http.ResponseWriter, r *http.Request) {
		detailsMatch = r.Header.Get("If-Match")
		w.WriteHeader(http.StatusNoContent)
	})
	c := plannerClient(t, mux)

	if _, err := c.SetDescription(context.Background(), "T1", "notes"); err != nil {
		t.Fatal(err)
	}
	if detailsMatch != `W/"details-token"` {
		t.Errorf("If-Match = %q, want the details token, never the task's", detailsMatch)
	}
	if taskGets != 0 {
		t.Errorf("task endpoint fetched %d times during a details write", taskGets)
	}
}

func TestGuardedPatchConflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/buckets/B1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"B1","@odata.etag":"W/\"stale\""}`)
	})
	mux.HandleFunc("PATCH /v1.0/planner/buckets/B1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		fmt.Fprint(w, `{"error":{"message":"The attempted changes conflicted with already accepted changes."}}`)
	})
	c := plannerClient(t, mux)

	_, err := c.RenameBucket(context.Background(), "B1", "Sprint 2")
	var conflict *MutationConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected MutationConflictError, got %T: %v", err, err)
	}
	var te *TransportError
	if !errors.As(err, &te) || te.Status != http.StatusPreconditionFailed {
		t.Errorf("conflict must wrap the underlying transport failure: %v", err)
	}
}

func TestTokenFetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "resource deleted concurrently",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"error":{"message":"not found"}}`)
			},
		},
		{
			name: "etag field absent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id":"T1"}`)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patched := false
			mux := http.NewServeMux()
			mux.HandleFunc("GET /v1.0/planner/tasks/T1", tt.handler)
			mux.HandleFunc("PATCH /v1.0/planner/tasks/T1", func(w http.ResponseWriter, r *http.Request) {
				patched = true
			})
			c := plannerClient(t, mux)

			_, err := c.MoveTask(context.Background(), "T1", "B2")
			var tfe *TokenFetchError
			if !errors.As(err, &tfe) {
				t.Fatalf("expected TokenFetchError, got %T: %v", err, err)
			}
			if patched {
				t.Error("no write may be attempted after a failed token fetch")
			}
		})
	}
}

func TestGuardedDelete(t *testing.T) {
	var deleteMatch string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/tasks/T1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"T1","@odata.etag":"W/\"v7\""}`)
	})
	mux.HandleFunc("DELETE /v1.0/planner/tasks/T1", func(w http.ResponseWriter, r *http.Request) {
		deleteMatch = r.Header.Get("If-Match")
		w.WriteHeader(http.StatusNoContent)
	})
	c := plannerClient(t, mux)

	if err := c.DeleteTask(context.Background(), "T1"); err != nil {
		t.Fatal(err)
	}
	if deleteMatch != `W/"v7"` {
		t.Errorf("If-Match = %q", deleteMatch)
	}
}

func TestRenameBucketFetchesFreshTokenPerCall(t *testing.T) {
	version := 0
	var matches []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/buckets/B1", func(w http.ResponseWriter, r *http.Request) {
		version++
		fmt.Fprintf(w, `{"id":"B1","name":"Backlog","@odata.etag":"W/\"v%d\""}`, version)
	})
	mux.HandleFunc("PATCH /v1.0/planner/buckets/B1", func(w http.ResponseWriter, r *http.Request) {
		matches = append(matches, r.Header.Get("If-Match"))
		w.WriteHeader(http.StatusNoContent)
	})
	c := plannerClient(t, mux)

	// Re-issuing the same rename succeeds; each call reads its own token.
	for i := 0; i < 2; i++ {
		if _, err := c.RenameBucket(context.Background(), "B1", "Backlog"); err != nil {
			t.Fatal(err)
		}
	}
	if len(matches) != 2 || matches[0] != `W/"v1"` || matches[1] != `W/"v2"` {
		t.Errorf("If-Match sequence = %v, want one fresh token per call", matches)
	}
}

func TestCreateTaskPostBody(t *testing.T) {
	var postBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1.0/planner/tasks", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&postBody)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"T-new","title":"Review PR #123"}`)
	})
	c := plannerClient(t, mux)

	body, err := c.CreateTask(context.Background(), "P1", "B1", "Review PR #123")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"planId": "P1", "bucketId": "B1", "title": "Review PR #123"}
	if len(postBody) != len(want) {
		t.Fatalf("post body = %v", postBody)
	}
	for k, v := range want {
		if postBody[k] != v {
			t.Errorf("post body[%q] = %v, want %v", k, postBody[k], v)
		}
	}
	if string(body) != `{"id":"T-new","title":"Review PR #123"}` {
		t.Errorf("response = %q, want the upstream body verbatim", body)
	}
}

// plannerClient serves the mux with a /v1.0 base URL, mirroring the real
// layout.
func plannerClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	c := testClient(t, mux)
	c.BaseURL += "/v1.0"
	return c
}
