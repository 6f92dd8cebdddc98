package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func jsonDecode(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func TestListGroupMembersResolvesContainer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/plans/P1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"P1","title":"Roadmap","container":{"containerId":"G1","type":"group"}}`)
	})
	mux.HandleFunc("GET /v1.0/groups/G1/members", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":[{"id":"u1","displayName":"Ada"}]}`)
	})
	c := plannerClient(t, mux)

	body, err := c.ListGroupMembers(context.Background(), "P1")
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"value":[{"id":"u1","displayName":"Ada"}]}` {
		t.Errorf("body = %q", body)
	}
}

func TestListGroupMembersLegacyOwnerFallback(t *testing.T) {
	hit := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/plans/P1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"P1","title":"Roadmap","owner":"G-legacy"}`)
	})
	mux.HandleFunc("GET /v1.0/groups/G-legacy/members", func(w http.ResponseWriter, r *http.Request) {
		hit = true
		fmt.Fprint(w, `{"value":[]}`)
	})
	c := plannerClient(t, mux)

	if _, err := c.ListGroupMembers(context.Background(), "P1"); err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("owner field must be used when the plan has no container")
	}
}

func TestValidationBeforeNetwork(t *testing.T) {
	c := plannerClient(t, http.NewServeMux()) // any request would 404

	tests := []struct {
		name string
		call func() error
	}{
		{"create bucket without name", func() error {
			_, err := c.CreateBucket(context.Background(), "P1", " ")
			return err
		}},
		{"rename bucket without name", func() error {
			_, err := c.RenameBucket(context.Background(), "B1", "")
			return err
		}},
		{"create task without title", func() error {
			_, err := c.CreateTask(context.Background(), "P1", "B1", "")
			return err
		}},
		{"move task without bucket", func() error {
			_, err := c.MoveTask(context.Background(), "T1", "")
			return err
		}},
		{"update task with out-of-range percent", func() error {
			pc := 150
			_, err := c.UpdateTask(context.Background(), "T1", TaskUpdate{PercentComplete: &pc})
			return err
		}},
		{"checklist update without item id", func() error {
			_, err := c.UpdateChecklistItem(context.Background(), "T1", "", nil, nil)
			return err
		}},
		{"reference delete without url", func() error {
			_, err := c.DeleteReference(context.Background(), "T1", "")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError before any network call, got %T: %v", err, err)
			}
		})
	}
}

func TestAddChecklistItemsDelta(t *testing.T) {
	var patchBody struct {
		Checklist map[string]struct {
			ODataType string `json:"@odata.type"`
			Title     string `json:"title"`
			IsChecked bool   `json:"isChecked"`
		} `json:"checklist"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1.0/planner/tasks/T1/details", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"T1","@odata.etag":"W/\"d1\""}`)
	})
	mux.HandleFunc("PATCH /v1.0/planner/tasks/T1/details", func(w http.ResponseWriter, r *http.Request) {
		_ = jsonDecode(r, &patchBody)
		w.WriteHeader(http.StatusNoContent)
	})
	c := plannerClient(t, mux)

	drafts := []ChecklistItemDraft{
		{Title: "write tests"},
		{Title: "update docs"},
		{Title: "ship it", IsChecked: true},
	}
	if _, err := c.AddChecklistItems(context.Background(), "T1", drafts); err != nil {
		t.Fatal(err)
	}
	if len(patchBody.Checklist) != 3 {
		t.Fatalf("checklist delta has %d entries, want 3", len(patchBody.Checklist))
	}
	checked := 0
	for id, item := range patchBody.Checklist {
		if id == "" {
			t.Error("empty generated id")
		}
		if item.ODataType != "#microsoft.graph.plannerChecklistItem" {
			t.Errorf("odata type = %q", item.ODataType)
		}
		if item.IsChecked {
			checked++
		}
	}
	if checked != 1 {
		t.Errorf("%d items checked, want only the explicitly checked one", checked)
	}
}
