package graph

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kutbudev/planner-mcp/internal/models"
)

// Delta payloads name only the fields and map entries to change; the
// upstream merges them server-side. Omitted keys stay untouched, an
// explicit null deletes an entry. Each builder produces one complete delta
// document or fails synchronously on invalid input.

const (
	odataTypeAssignment    = "#microsoft.graph.plannerAssignment"
	odataTypeChecklistItem = "#microsoft.graph.plannerChecklistItem"
	odataTypeReference     = "#microsoft.graph.plannerExternalReference"

	// orderHintLast is the upstream sentinel for "place last". The leading
	// space is part of the value.
	orderHintLast = " !"
)

// TaskUpdate collects the optional fields of update-task. Pointer fields
// distinguish "absent" from zero values so absent parameters are omitted
// from the delta entirely, never sent as null.
type TaskUpdate struct {
	Title           string
	PercentComplete *int
	AssignUserID    string
	Category        string
}

func taskUpdateDelta(u TaskUpdate) (map[string]any, error) {
	delta := map[string]any{}
	if u.Title != "" {
		delta["title"] = u.Title
	}
	if u.PercentComplete != nil {
		pc := *u.PercentComplete
		if pc < 0 || pc > 100 {
			return nil, validationf("percentComplete must be between 0 and 100, got %d", pc)
		}
		delta["percentComplete"] = pc
	}
	if u.AssignUserID != "" {
		delta["assignments"] = map[string]any{
			u.AssignUserID: models.Assignment{
				ODataType: odataTypeAssignment,
				OrderHint: orderHintLast,
			},
		}
	}
	if u.Category != "" {
		if err := validateCategory(u.Category); err != nil {
			return nil, err
		}
		delta["appliedCategories"] = map[string]bool{u.Category: true}
	}
	if len(delta) == 0 {
		return nil, validationf("at least one of title, percentComplete, assignUserId or category is required")
	}
	return delta, nil
}

// validateCategory accepts exactly the 25 generic category slots.
func validateCategory(category string) error {
	n, ok := strings.CutPrefix(category, "category")
	if ok {
		if i, err := strconv.Atoi(n); err == nil && i >= 1 && i <= 25 && n == strconv.Itoa(i) {
			return nil
		}
	}
	return validationf("category must be one of category1..category25, got %q", category)
}

// ChecklistItemDraft is the caller-supplied shape of a new checklist item.
type ChecklistItemDraft struct {
	Title     string
	IsChecked bool
}

// checklistAddDelta generates one fresh id per draft. The ids become the
// items' permanent identifiers, so they are UUIDs.
func checklistAddDelta(drafts []ChecklistItemDraft) (map[string]any, error) {
	if len(drafts) == 0 {
		return nil, validationf("at least one checklist item is required")
	}
	entries := map[string]any{}
	for _, d := range drafts {
		if strings.TrimSpace(d.Title) == "" {
			return nil, validationf("checklist item title is required")
		}
		entries[uuid.NewString()] = models.ChecklistItem{
			ODataType: odataTypeChecklistItem,
			Title:     d.Title,
			IsChecked: d.IsChecked,
		}
	}
	return map[string]any{"checklist": entries}, nil
}

// checklistUpdateDelta patches a single existing item. Nil fields are
// omitted so the upstream keeps their current values.
func checklistUpdateDelta(itemID string, title *string, isChecked *bool) (map[string]any, error) {
	entry := map[string]any{"@odata.type": odataTypeChecklistItem}
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, validationf("checklist item title cannot be empty")
		}
		entry["title"] = *title
	}
	if isChecked != nil {
		entry["isChecked"] = *isChecked
	}
	if len(entry) == 1 {
		return nil, validationf("at least one of title or isChecked is required")
	}
	return map[string]any{"checklist": map[string]any{itemID: entry}}, nil
}

// checklistDeleteDelta removes an item: the key maps to an explicit null,
// never an entry with empty fields.
func checklistDeleteDelta(itemID string) map[string]any {
	return map[string]any{"checklist": map[string]any{itemID: nil}}
}

func referenceAddDelta(rawURL, alias, refType string) (map[string]any, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, validationf("reference url is required")
	}
	ref := models.ExternalReference{ODataType: odataTypeReference, Alias: alias, Type: refType}
	return map[string]any{"references": map[string]any{EncodeReferenceURL(rawURL): ref}}, nil
}

func referenceDeleteDelta(rawURL string) map[string]any {
	return map[string]any{"references": map[string]any{EncodeReferenceURL(rawURL): nil}}
}

// EncodeReferenceURL turns a reference URL into the map key the references
// delta requires. The upstream parser treats ':', '/' and '.' as
// syntactic, so those stay literal; everything else outside the RFC 3986
// unreserved set is percent-encoded. Keys are never decoded by this
// system.
func EncodeReferenceURL(rawURL string) string {
	var b strings.Builder
	for i := 0; i < len(rawURL); i++ {
		ch := rawURL[i]
		if isUnreservedByte(ch) || ch == ':' || ch == '/' || ch == '.' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[ch>>4])
		b.WriteByte(upperhex[ch&0xf])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreservedByte(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	case ch == '-' || ch == '_' || ch == '~':
		return true
	}
	return false
}
