package graph

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kutbudev/planner-mcp/internal/models"
)

// CommentResult reports the outcome of AddComment. Warning is non-empty in
// exactly one case: the comment was durably created as a new conversation
// but attaching the conversation to the task failed, leaving an orphan the
// caller can relink manually.
type CommentResult struct {
	ThreadID       string `json:"thread_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message"`
	Warning        string `json:"warning,omitempty"`
}

// AddComment posts a comment on a task. When the task already references a
// conversation the comment becomes a reply to that conversation's first
// thread (first in upstream listing order, no secondary sort); otherwise a
// new thread is created with the task's current title as topic and the
// resulting conversation is attached to the task with a guarded patch.
func (c *Client) AddComment(ctx context.Context, taskID, comment string) (*CommentResult, error) {
	task, groupID, err := c.taskGroup(ctx, taskID)
	if err != nil {
		return nil, err
	}

	post := map[string]any{
		"body": models.ItemBody{ContentType: "text", Content: comment},
	}

	if task.ConversationThreadID != "" {
		threads, err := c.listThreads(ctx, groupID, task.ConversationThreadID)
		if err != nil {
			return nil, err
		}
		if len(threads) == 0 {
			return nil, &EmptyConversationError{ConversationID: task.ConversationThreadID}
		}
		first := threads[0]
		replyURL := c.threadReplyURL(groupID, task.ConversationThreadID, first.ID)
		if _, err := c.Do(ctx, http.MethodPost, replyURL, map[string]any{"post": post}, nil); err != nil {
			return nil, err
		}
		return &CommentResult{
			ThreadID:       first.ID,
			ConversationID: task.ConversationThreadID,
			Message:        "Comment added to existing conversation",
		}, nil
	}

	// No conversation yet: creating a thread under the group creates one.
	body := map[string]any{
		"topic": task.Title,
		"posts": []map[string]any{post},
	}
	respBody, err := c.Do(ctx, http.MethodPost, c.groupThreadsURL(groupID), body, nil)
	if err != nil {
		return nil, err
	}
	created, err := decodeJSON[models.ConversationThread](respBody)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal created thread: %w", err)
	}
	conversationID := created.ConversationID
	if conversationID == "" {
		conversationID = created.ID
	}

	// The comment already exists upstream at this point. If attaching the
	// conversation to the task fails, report the orphan instead of failing
	// the whole call.
	attach := map[string]any{"conversationThreadId": conversationID}
	if _, err := c.guardedPatch(ctx, c.taskURL(taskID), attach); err != nil {
		return &CommentResult{
			ThreadID:       created.ID,
			ConversationID: conversationID,
			Message:        "Comment posted as new conversation",
			Warning: fmt.Sprintf(
				"comment was created but could not be linked to the task: %v; relink conversation %s manually",
				err, conversationID),
		}, nil
	}

	return &CommentResult{
		ThreadID:       created.ID,
		ConversationID: conversationID,
		Message:        "Comment posted as new conversation and linked to task",
	}, nil
}

// Comments walks task -> plan -> group -> threads -> posts and flattens
// every post into one sequence. Ordering is the upstream listing order
// throughout; nothing is re-sorted by time.
func (c *Client) Comments(ctx context.Context, taskID string) ([]models.Comment, error) {
	task, groupID, err := c.taskGroup(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ConversationThreadID == "" {
		return []models.Comment{}, nil
	}

	threads, err := c.listThreads(ctx, groupID, task.ConversationThreadID)
	if err != nil {
		return nil, err
	}
	if len(threads) == 0 {
		return nil, &EmptyConversationError{ConversationID: task.ConversationThreadID}
	}

	comments := []models.Comment{}
	for _, thread := range threads {
		var posts models.ListEnvelope[models.Post]
		url := c.threadPostsURL(groupID, task.ConversationThreadID, thread.ID)
		if err := c.getJSON(ctx, url, &posts); err != nil {
			return nil, err
		}
		for _, p := range posts.Value {
			comments = append(comments, models.Comment{
				ID:          p.ID,
				ThreadID:    thread.ID,
				Content:     p.Body.Content,
				ContentType: p.Body.ContentType,
				CreatedAt:   p.CreatedDateTime,
				Sender:      p.From.Display(),
			})
		}
	}
	return comments, nil
}

// taskGroup fetches the task and resolves its plan's owning group. The
// group is re-resolved on every call; this process holds no session-lived
// cache.
func (c *Client) taskGroup(ctx context.Context, taskID string) (*models.Task, string, error) {
	var task models.Task
	if err := c.getJSON(ctx, c.taskURL(taskID), &task); err != nil {
		return nil, "", err
	}
	var plan models.Plan
	if err := c.getJSON(ctx, c.planURL(task.PlanID), &plan); err != nil {
		return nil, "", err
	}
	groupID := plan.GroupID()
	if groupID == "" {
		return nil, "", fmt.Errorf("plan %s has no owning group; conversations are unavailable", task.PlanID)
	}
	return &task, groupID, nil
}

func (c *Client) listThreads(ctx context.Context, groupID, conversationID string) ([]models.ConversationThread, error) {
	var threads models.ListEnvelope[models.ConversationThread]
	if err := c.getJSON(ctx, c.conversationThreadsURL(groupID, conversationID), &threads); err != nil {
		return nil, err
	}
	return threads.Value, nil
}
