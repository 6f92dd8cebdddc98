// Package models holds the transient wire representations of Planner
// resources. Nothing here is persisted; every value is decoded from or
// encoded into a single Graph API round trip. JSON field names follow the
// Graph contract exactly and must not be renamed.
package models

// Plan is a Planner plan. Read-only from this server's perspective; the
// container reference is needed to resolve the owning group for
// conversation operations.
type Plan struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Owner     string         `json:"owner,omitempty"`
	Container *PlanContainer `json:"container,omitempty"`
	ETag      string         `json:"@odata.etag,omitempty"`
}

// PlanContainer identifies the group a plan lives in.
type PlanContainer struct {
	ContainerID string `json:"containerId"`
	Type        string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
}

// GroupID returns the owning group identifier for conversation resources.
// Newer plans carry it in container.containerId, older ones in owner.
func (p *Plan) GroupID() string {
	if p.Container != nil && p.Container.ContainerID != "" {
		return p.Container.ContainerID
	}
	return p.Owner
}

// PlanDetails is the satellite record carrying the category label
// dictionary (categoryDescriptions maps category1..category25 to
// human-readable names).
type PlanDetails struct {
	ID                   string            `json:"id"`
	CategoryDescriptions map[string]string `json:"categoryDescriptions,omitempty"`
	ETag                 string            `json:"@odata.etag,omitempty"`
}

// Bucket is a Planner bucket.
type Bucket struct {
	ID        string `json:"id"`
	PlanID    string `json:"planId"`
	Name      string `json:"name"`
	OrderHint string `json:"orderHint,omitempty"`
	ETag      string `json:"@odata.etag,omitempty"`
}

// Task is a Planner task. Task and TaskDetails are distinct concurrency
// domains: each carries its own ETag even though they share an id.
type Task struct {
	ID                   string                `json:"id"`
	PlanID               string                `json:"planId"`
	BucketID             string                `json:"bucketId,omitempty"`
	Title                string                `json:"title"`
	PercentComplete      int                   `json:"percentComplete"`
	Assignments          map[string]Assignment `json:"assignments,omitempty"`
	AppliedCategories    map[string]bool       `json:"appliedCategories,omitempty"`
	ConversationThreadID string                `json:"conversationThreadId,omitempty"`
	ETag                 string                `json:"@odata.etag,omitempty"`
}

// Assignment is one entry of a task's assignee map, keyed by user id.
type Assignment struct {
	ODataType string `json:"@odata.type"`
	OrderHint string `json:"orderHint"`
}

// TaskDetails is the satellite record for a task: description, checklist
// and external references.
type TaskDetails struct {
	ID          string                       `json:"id"`
	Description string                       `json:"description,omitempty"`
	Checklist   map[string]ChecklistItem     `json:"checklist,omitempty"`
	References  map[string]ExternalReference `json:"references,omitempty"`
	ETag        string                       `json:"@odata.etag,omitempty"`
}

// ChecklistItem is one entry of a task-details checklist map, keyed by a
// generated item id.
type ChecklistItem struct {
	ODataType string `json:"@odata.type,omitempty"`
	Title     string `json:"title"`
	IsChecked bool   `json:"isChecked"`
}

// ExternalReference is one entry of a task-details references map. The map
// key is the percent-encoded target URL, not a separate id.
type ExternalReference struct {
	ODataType string `json:"@odata.type,omitempty"`
	Alias     string `json:"alias,omitempty"`
	Type      string `json:"type,omitempty"`
}

// ConversationThread is a thread inside a group conversation. Thread
// creation responses may carry the parent conversation id explicitly.
type ConversationThread struct {
	ID             string `json:"id"`
	Topic          string `json:"topic,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
}

// Post is a single message inside a conversation thread.
type Post struct {
	ID              string     `json:"id"`
	Body            ItemBody   `json:"body"`
	CreatedDateTime string     `json:"createdDateTime,omitempty"`
	From            *Recipient `json:"from,omitempty"`
}

// ItemBody is a content/contentType pair as the Graph API models message
// bodies.
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Recipient wraps a sender's email address record.
type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// EmailAddress carries a display name and address.
type EmailAddress struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// Display returns the sender's display name, falling back to the address.
func (r *Recipient) Display() string {
	if r == nil {
		return ""
	}
	if r.EmailAddress.Name != "" {
		return r.EmailAddress.Name
	}
	return r.EmailAddress.Address
}

// Comment is the flattened view of one post returned by the comment
// listing: thread traversal order is preserved, nothing is re-sorted.
type Comment struct {
	ID          string `json:"id"`
	ThreadID    string `json:"thread_id"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
	CreatedAt   string `json:"created_at"`
	Sender      string `json:"sender,omitempty"`
}

// ListEnvelope is the Graph collection wrapper: every listing endpoint
// returns {"value": [...]}.
type ListEnvelope[T any] struct {
	Value []T `json:"value"`
}
