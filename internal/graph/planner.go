package graph

import (
	"context"
	"net/http"
	"strings"

	"github.com/kutbudev/planner-mcp/internal/models"
)

// One exported method per tool operation. Reads forward the raw upstream
// JSON so nothing is lost in translation; mutations run the guarded
// protocol and return either the upstream body or a confirmation when the
// upstream answers with no content.

// ListPlans returns the caller's plans, raw.
func (c *Client) ListPlans(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.mePlansURL())
}

// GetPlanDetails returns the plan-details satellite (category labels live
// there), raw.
func (c *Client) GetPlanDetails(ctx context.Context, planID string) ([]byte, error) {
	return c.get(ctx, c.planDetailsURL(planID))
}

// MyTasks returns the caller's tasks across plans, raw.
func (c *Client) MyTasks(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.meTasksURL())
}

// ListGroupMembers resolves the plan's owning group and lists its members,
// raw.
func (c *Client) ListGroupMembers(ctx context.Context, planID string) ([]byte, error) {
	var plan models.Plan
	if err := c.getJSON(ctx, c.planURL(planID), &plan); err != nil {
		return nil, err
	}
	groupID := plan.GroupID()
	if groupID == "" {
		return nil, validationf("plan %s has no owning group", planID)
	}
	return c.get(ctx, c.groupMembersURL(groupID))
}

// ListBuckets returns a plan's buckets, raw.
func (c *Client) ListBuckets(ctx context.Context, planID string) ([]byte, error) {
	return c.get(ctx, c.planBucketsURL(planID))
}

// CreateBucket creates a bucket placed last in the plan.
func (c *Client) CreateBucket(ctx context.Context, planID, name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("bucket name is required")
	}
	body := map[string]any{"planId": planID, "name": name, "orderHint": orderHintLast}
	return c.Do(ctx, http.MethodPost, c.bucketsURL(), body, nil)
}

// RenameBucket is a guarded single-field replace.
func (c *Client) RenameBucket(ctx context.Context, bucketID, name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("bucket name is required")
	}
	return c.guardedPatch(ctx, c.bucketURL(bucketID), map[string]any{"name": name})
}

// DeleteBucket is a guarded delete.
func (c *Client) DeleteBucket(ctx context.Context, bucketID string) error {
	return c.guardedDelete(ctx, c.bucketURL(bucketID))
}

// ListTasks returns a plan's tasks, raw.
func (c *Client) ListTasks(ctx context.Context, planID string) ([]byte, error) {
	return c.get(ctx, c.planTasksURL(planID))
}

// GetTask returns one task, raw.
func (c *Client) GetTask(ctx context.Context, taskID string) ([]byte, error) {
	return c.get(ctx, c.taskURL(taskID))
}

// GetTaskDetails returns the task-details satellite, raw.
func (c *Client) GetTaskDetails(ctx context.Context, taskID string) ([]byte, error) {
	return c.get(ctx, c.taskDetailsURL(taskID))
}

// CreateTask creates a task in the given plan and bucket. Creation is a
// plain POST; only subsequent mutations are ETag-guarded.
func (c *Client) CreateTask(ctx context.Context, planID, bucketID, title string) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationf("task title is required")
	}
	body := map[string]any{"planId": planID, "bucketId": bucketID, "title": title}
	return c.Do(ctx, http.MethodPost, c.tasksURL(), body, nil)
}

// UpdateTask applies a guarded field-replace delta built from the present
// fields of u.
func (c *Client) UpdateTask(ctx context.Context, taskID string, u TaskUpdate) ([]byte, error) {
	delta, err := taskUpdateDelta(u)
	if err != nil {
		return nil, err
	}
	return c.guardedPatch(ctx, c.taskURL(taskID), delta)
}

// SetDescription replaces the free-text description on the task-details
// resource, guarded by the details ETag (not the task's).
func (c *Client) SetDescription(ctx context.Context, taskID, description string) ([]byte, error) {
	return c.guardedPatch(ctx, c.taskDetailsURL(taskID), map[string]any{"description": description})
}

// MoveTask moves a task to another bucket within its plan.
func (c *Client) MoveTask(ctx context.Context, taskID, bucketID string) ([]byte, error) {
	if strings.TrimSpace(bucketID) == "" {
		return nil, validationf("bucketId is required")
	}
	return c.guardedPatch(ctx, c.taskURL(taskID), map[string]any{"bucketId": bucketID})
}

// DeleteTask is a guarded delete.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.guardedDelete(ctx, c.taskURL(taskID))
}

// AddChecklistItems upserts freshly-keyed checklist entries onto the
// task-details resource.
func (c *Client) AddChecklistItems(ctx context.Context, taskID string, drafts []ChecklistItemDraft) ([]byte, error) {
	delta, err := checklistAddDelta(drafts)
	if err != nil {
		return nil, err
	}
	return c.guardedPatch(ctx, c.taskDetailsURL(taskID), delta)
}

// UpdateChecklistItem patches a single checklist entry in place.
func (c *Client) UpdateChecklistItem(ctx context.Context, taskID, itemID string, title *string, isChecked *bool) ([]byte, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, validationf("itemId is required")
	}
	delta, err := checklistUpdateDelta(itemID, title, isChecked)
	if err != nil {
		return nil, err
	}
	return c.guardedPatch(ctx, c.taskDetailsURL(taskID), delta)
}

// DeleteChecklistItem nulls out one checklist entry.
func (c *Client) DeleteChecklistItem(ctx context.Context, taskID, itemID string) ([]byte, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, validationf("itemId is required")
	}
	return c.guardedPatch(ctx, c.taskDetailsURL(taskID), checklistDeleteDelta(itemID))
}

// AddReference upserts an external reference keyed by the encoded URL.
func (c *Client) AddReference(ctx context.Context, taskID, rawURL, alias, refType string) ([]byte, error) {
	delta, err := referenceAddDelta(rawURL, alias, refType)
	if err != nil {
		return nil, err
	}
	return c.guardedPatch(ctx, c.taskDetailsURL(taskID), delta)
}

// DeleteReference nulls out the reference entry for the given URL.
func (c *Client) DeleteReference(ctx context.Context, taskID, rawURL string) ([]byte, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, validationf("reference url is required")
	}
	return c.guardedPatch(ctx, c.taskDetailsURL(taskID), referenceDeleteDelta(rawURL))
}
