package mcp

import (
	"context"
	"strings"

	"github.com/kutbudev/planner-mcp/internal/graph"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition is the name/description pair of one registered tool,
// exported for the 'mcp tools' CLI listing.
type ToolDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// toolDefs is the single source of truth for the tool catalogue. Which
// tools a server variant exposes is this list, not a code fork.
var toolDefs = []ToolDefinition{
	{"list-plans", "List all Planner plans you are a member of."},
	{"get-plan-details", "Get plan details including the category label dictionary (category1..category25)."},
	{"get-my-tasks", "List your assigned tasks across all plans."},
	{"list-group-members", "List members of the group that owns a plan. Useful to find user ids for update-task assignUserId."},
	{"list-buckets", "List the buckets of a plan."},
	{"create-bucket", "Create a bucket in a plan, placed last."},
	{"update-bucket", "Rename a bucket."},
	{"delete-bucket", "Delete a bucket. Tasks in it are not deleted."},
	{"list-tasks", "List the tasks of a plan."},
	{"get-task", "Get one task (title, bucket, percentComplete, assignments, categories)."},
	{"get-task-details", "Get a task's details: description, checklist and references."},
	{"create-task", "Create a task in a plan and bucket."},
	{"update-task", "Update task fields: title, percentComplete (0-100), assign a user, or apply a category (category1..category25). Only provided fields change."},
	{"update-task-details", "Replace a task's free-text description."},
	{"move-task", "Move a task to a different bucket."},
	{"delete-task", "Delete a task."},
	{"add-checklist-item", "Add one checklist item to a task. isChecked defaults to false."},
	{"add-checklist-items", "Add multiple checklist items to a task in one update, all unchecked."},
	{"update-checklist-item", "Update a checklist item's title and/or checked state."},
	{"delete-checklist-item", "Remove a checklist item from a task."},
	{"get-task-comments", "List all comments on a task in conversation order."},
	{"add-task-comment", "Comment on a task. Creates the task's conversation on first comment, replies to it afterwards."},
	{"add-reference", "Attach a URL reference to a task, with optional alias and type."},
	{"delete-reference", "Remove a URL reference from a task."},
}

// ToolDefinitions returns the tool catalogue.
func ToolDefinitions() []ToolDefinition {
	defs := make([]ToolDefinition, len(toolDefs))
	copy(defs, toolDefs)
	return defs
}

func tool(name string) *mcp.Tool {
	for i := range toolDefs {
		if toolDefs[i].Name == name {
			return &mcp.Tool{Name: name, Description: toolDefs[i].Description}
		}
	}
	panic("unknown tool: " + name)
}

// registerTools registers every tool with the server. The SDK infers each
// InputSchema from the handler's input struct type.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, tool("list-plans"), handleListPlans)
	mcp.AddTool(server, tool("get-plan-details"), handleGetPlanDetails)
	mcp.AddTool(server, tool("get-my-tasks"), handleGetMyTasks)
	mcp.AddTool(server, tool("list-group-members"), handleListGroupMembers)
	mcp.AddTool(server, tool("list-buckets"), handleListBuckets)
	mcp.AddTool(server, tool("create-bucket"), handleCreateBucket)
	mcp.AddTool(server, tool("update-bucket"), handleUpdateBucket)
	mcp.AddTool(server, tool("delete-bucket"), handleDeleteBucket)
	mcp.AddTool(server, tool("list-tasks"), handleListTasks)
	mcp.AddTool(server, tool("get-task"), handleGetTask)
	mcp.AddTool(server, tool("get-task-details"), handleGetTaskDetails)
	mcp.AddTool(server, tool("create-task"), handleCreateTask)
	mcp.AddTool(server, tool("update-task"), handleUpdateTask)
	mcp.AddTool(server, tool("update-task-details"), handleUpdateTaskDetails)
	mcp.AddTool(server, tool("move-task"), handleMoveTask)
	mcp.AddTool(server, tool("delete-task"), handleDeleteTask)
	mcp.AddTool(server, tool("add-checklist-item"), handleAddChecklistItem)
	mcp.AddTool(server, tool("add-checklist-items"), handleAddChecklistItems)
	mcp.AddTool(server, tool("update-checklist-item"), handleUpdateChecklistItem)
	mcp.AddTool(server, tool("delete-checklist-item"), handleDeleteChecklistItem)
	mcp.AddTool(server, tool("get-task-comments"), handleGetTaskComments)
	mcp.AddTool(server, tool("add-task-comment"), handleAddTaskComment)
	mcp.AddTool(server, tool("add-reference"), handleAddReference)
	mcp.AddTool(server, tool("delete-reference"), handleDeleteReference)
}

type EmptyInput struct{}

type PlanIDInput struct {
	PlanID string `json:"planId"`
}

type TaskIDInput struct {
	TaskID string `json:"taskId"`
}

type BucketIDInput struct {
	BucketID string `json:"bucketId"`
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &graph.ValidationError{Msg: name + " is required"}
	}
	return nil
}

func handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	body, err := planner.ListPlans(ctx)
	if err != nil {
		return nil, nil, opError("Plan listing", err)
	}
	return rawResult(body, "No plans found"), nil, nil
}

func handleGetPlanDetails(ctx context.Context, req *mcp.CallToolRequest, input PlanIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("planId", input.PlanID); err != nil {
		return nil, nil, err
	}
	body, err := planner.GetPlanDetails(ctx, input.PlanID)
	if err != nil {
		return nil, nil, opError("Plan details fetch", err)
	}
	return rawResult(body, "Plan has no details"), nil, nil
}

func handleGetMyTasks(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	body, err := planner.MyTasks(ctx)
	if err != nil {
		return nil, nil, opError("Task listing", err)
	}
	return rawResult(body, "No tasks assigned to you"), nil, nil
}

func handleListGroupMembers(ctx context.Context, req *mcp.CallToolRequest, input PlanIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("planId", input.PlanID); err != nil {
		return nil, nil, err
	}
	body, err := planner.ListGroupMembers(ctx, input.PlanID)
	if err != nil {
		return nil, nil, opError("Member listing", err)
	}
	return rawResult(body, "No members found"), nil, nil
}

func handleListBuckets(ctx context.Context, req *mcp.CallToolRequest, input PlanIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("planId", input.PlanID); err != nil {
		return nil, nil, err
	}
	body, err := planner.ListBuckets(ctx, input.PlanID)
	if err != nil {
		return nil, nil, opError("Bucket listing", err)
	}
	return rawResult(body, "No buckets found"), nil, nil
}

type CreateBucketInput struct {
	PlanID string `json:"planId"`
	Name   string `json:"name"`
}

func handleCreateBucket(ctx context.Context, req *mcp.CallToolRequest, input CreateBucketInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("planId", input.PlanID); err != nil {
		return nil, nil, err
	}
	body, err := planner.CreateBucket(ctx, input.PlanID, input.Name)
	if err != nil {
		return nil, nil, opError("Bucket creation", err)
	}
	return rawResult(body, "Bucket created"), nil, nil
}

type UpdateBucketInput struct {
	BucketID string `json:"bucketId"`
	Name     string `json:"name"`
}

func handleUpdateBucket(ctx context.Context, req *mcp.CallToolRequest, input UpdateBucketInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("bucketId", input.BucketID); err != nil {
		return nil, nil, err
	}
	body, err := planner.RenameBucket(ctx, input.BucketID, input.Name)
	if err != nil {
		return nil, nil, opError("Bucket update", err)
	}
	return rawResult(body, "Bucket updated"), nil, nil
}

func handleDeleteBucket(ctx context.Context, req *mcp.CallToolRequest, input BucketIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("bucketId", input.BucketID); err != nil {
		return nil, nil, err
	}
	if err := planner.DeleteBucket(ctx, input.BucketID); err != nil {
		return nil, nil, opError("Bucket deletion", err)
	}
	return rawResult(nil, "Bucket deleted"), nil, nil
}

func handleListTasks(ctx context.Context, req *mcp.CallToolRequest, input PlanIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("planId", input.PlanID); err != nil {
		return nil, nil, err
	}
	body, err := planner.ListTasks(ctx, input.PlanID)
	if err != nil {
		return nil, nil, opError("Task listing", err)
	}
	return rawResult(body, "No tasks found"), nil, nil
}

func handleGetTask(ctx context.Context, req *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.GetTask(ctx, input.TaskID)
	if err != nil {
		return nil, nil, opError("Task fetch", err)
	}
	return rawResult(body, "Task not found"), nil, nil
}

func handleGetTaskDetails(ctx context.Context, req *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.GetTaskDetails(ctx, input.TaskID)
	if err != nil {
		return nil, nil, opError("Task details fetch", err)
	}
	return rawResult(body, "Task has no details"), nil, nil
}

type CreateTaskInput struct {
	PlanID   string `json:"planId"`
	BucketID string `json:"bucketId"`
	Title    string `json:"title"`
}

func handleCreateTask(ctx context.Context, req *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("planId", input.PlanID); err != nil {
		return nil, nil, err
	}
	if err := requireID("bucketId", input.BucketID); err != nil {
		return nil, nil, err
	}
	body, err := planner.CreateTask(ctx, input.PlanID, input.BucketID, input.Title)
	if err != nil {
		return nil, nil, opError("Task creation", err)
	}
	return rawResult(body, "Task created"), nil, nil
}

type UpdateTaskInput struct {
	TaskID          string `json:"taskId"`
	Title           string `json:"title,omitempty"`
	PercentComplete *int   `json:"percentComplete,omitempty"`
	AssignUserID    string `json:"assignUserId,omitempty"`
	Category        string `json:"category,omitempty"`
}

func handleUpdateTask(ctx context.Context, req *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.UpdateTask(ctx, input.TaskID, graph.TaskUpdate{
		Title:           input.Title,
		PercentComplete: input.PercentComplete,
		AssignUserID:    input.AssignUserID,
		Category:        input.Category,
	})
	if err != nil {
		return nil, nil, opError("Task update", err)
	}
	return rawResult(body, "Task updated"), nil, nil
}

type UpdateTaskDetailsInput struct {
	TaskID      string `json:"taskId"`
	Description string `json:"description"`
}

func handleUpdateTaskDetails(ctx context.Context, req *mcp.CallToolRequest, input UpdateTaskDetailsInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.SetDescription(ctx, input.TaskID, input.Description)
	if err != nil {
		return nil, nil, opError("Task details update", err)
	}
	return rawResult(body, "Task description updated"), nil, nil
}

type MoveTaskInput struct {
	TaskID   string `json:"taskId"`
	BucketID string `json:"bucketId"`
}

func handleMoveTask(ctx context.Context, req *mcp.CallToolRequest, input MoveTaskInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.MoveTask(ctx, input.TaskID, input.BucketID)
	if err != nil {
		return nil, nil, opError("Task move", err)
	}
	return rawResult(body, "Task moved"), nil, nil
}

func handleDeleteTask(ctx context.Context, req *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	if err := planner.DeleteTask(ctx, input.TaskID); err != nil {
		return nil, nil, opError("Task deletion", err)
	}
	return rawResult(nil, "Task deleted"), nil, nil
}

type AddChecklistItemInput struct {
	TaskID    string `json:"taskId"`
	Title     string `json:"title"`
	IsChecked bool   `json:"isChecked,omitempty"`
}

func handleAddChecklistItem(ctx context.Context, req *mcp.CallToolRequest, input AddChecklistItemInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.AddChecklistItems(ctx, input.TaskID, []graph.ChecklistItemDraft{
		{Title: input.Title, IsChecked: input.IsChecked},
	})
	if err != nil {
		return nil, nil, opError("Checklist item creation", err)
	}
	return rawResult(body, "Checklist item added"), nil, nil
}

type AddChecklistItemsInput struct {
	TaskID string   `json:"taskId"`
	Items  []string `json:"items"`
}

func handleAddChecklistItems(ctx context.Context, req *mcp.CallToolRequest, input AddChecklistItemsInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	drafts := make([]graph.ChecklistItemDraft, 0, len(input.Items))
	for _, title := range input.Items {
		drafts = append(drafts, graph.ChecklistItemDraft{Title: title})
	}
	body, err := planner.AddChecklistItems(ctx, input.TaskID, drafts)
	if err != nil {
		return nil, nil, opError("Checklist item creation", err)
	}
	return rawResult(body, "Checklist items added"), nil, nil
}

type UpdateChecklistItemInput struct {
	TaskID    string  `json:"taskId"`
	ItemID    string  `json:"itemId"`
	Title     *string `json:"title,omitempty"`
	IsChecked *bool   `json:"isChecked,omitempty"`
}

func handleUpdateChecklistItem(ctx context.Context, req *mcp.CallToolRequest, input UpdateChecklistItemInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.UpdateChecklistItem(ctx, input.TaskID, input.ItemID, input.Title, input.IsChecked)
	if err != nil {
		return nil, nil, opError("Checklist item update", err)
	}
	return rawResult(body, "Checklist item updated"), nil, nil
}

type DeleteChecklistItemInput struct {
	TaskID string `json:"taskId"`
	ItemID string `json:"itemId"`
}

func handleDeleteChecklistItem(ctx context.Context, req *mcp.CallToolRequest, input DeleteChecklistItemInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.DeleteChecklistItem(ctx, input.TaskID, input.ItemID)
	if err != nil {
		return nil, nil, opError("Checklist item deletion", err)
	}
	return rawResult(body, "Checklist item deleted"), nil, nil
}

func handleGetTaskComments(ctx context.Context, req *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	comments, err := planner.Comments(ctx, input.TaskID)
	if err != nil {
		return nil, nil, opError("Comment listing", err)
	}
	result, err := textResult(comments)
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}

type AddTaskCommentInput struct {
	TaskID  string `json:"taskId"`
	Comment string `json:"comment"`
}

func handleAddTaskComment(ctx context.Context, req *mcp.CallToolRequest, input AddTaskCommentInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, nil, &graph.ValidationError{Msg: "comment is required"}
	}
	outcome, err := planner.AddComment(ctx, input.TaskID, input.Comment)
	if err != nil {
		return nil, nil, opError("Comment creation", err)
	}
	result, err := textResult(outcome)
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}

type AddReferenceInput struct {
	TaskID string `json:"taskId"`
	URL    string `json:"url"`
	Alias  string `json:"alias,omitempty"`
	Type   string `json:"type,omitempty"`
}

func handleAddReference(ctx context.Context, req *mcp.CallToolRequest, input AddReferenceInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.AddReference(ctx, input.TaskID, input.URL, input.Alias, input.Type)
	if err != nil {
		return nil, nil, opError("Reference creation", err)
	}
	return rawResult(body, "Reference added"), nil, nil
}

type DeleteReferenceInput struct {
	TaskID string `json:"taskId"`
	URL    string `json:"url"`
}

func handleDeleteReference(ctx context.Context, req *mcp.CallToolRequest, input DeleteReferenceInput) (*mcp.CallToolResult, any, error) {
	if err := requireID("taskId", input.TaskID); err != nil {
		return nil, nil, err
	}
	body, err := planner.DeleteReference(ctx, input.TaskID, input.URL)
	if err != nil {
		return nil, nil, opError("Reference deletion", err)
	}
	return rawResult(body, "Reference deleted"), nil, nil
}
