package graph

import "fmt"

// Endpoint construction is pure string work against the configured base
// URL. Malformed ids are not checked here; they surface as upstream 4xx
// responses.

func (c *Client) planURL(planID string) string {
	return fmt.Sprintf("%s/planner/plans/%s", c.BaseURL, planID)
}

func (c *Client) planDetailsURL(planID string) string {
	return fmt.Sprintf("%s/planner/plans/%s/details", c.BaseURL, planID)
}

func (c *Client) planTasksURL(planID string) string {
	return fmt.Sprintf("%s/planner/plans/%s/tasks", c.BaseURL, planID)
}

func (c *Client) planBucketsURL(planID string) string {
	return fmt.Sprintf("%s/planner/plans/%s/buckets", c.BaseURL, planID)
}

func (c *Client) taskURL(taskID string) string {
	return fmt.Sprintf("%s/planner/tasks/%s", c.BaseURL, taskID)
}

func (c *Client) taskDetailsURL(taskID string) string {
	return fmt.Sprintf("%s/planner/tasks/%s/details", c.BaseURL, taskID)
}

func (c *Client) bucketURL(bucketID string) string {
	return fmt.Sprintf("%s/planner/buckets/%s", c.BaseURL, bucketID)
}

func (c *Client) bucketsURL() string {
	return fmt.Sprintf("%s/planner/buckets", c.BaseURL)
}

func (c *Client) tasksURL() string {
	return fmt.Sprintf("%s/planner/tasks", c.BaseURL)
}

func (c *Client) meTasksURL() string {
	return fmt.Sprintf("%s/me/planner/tasks", c.BaseURL)
}

func (c *Client) mePlansURL() string {
	return fmt.Sprintf("%s/me/planner/plans", c.BaseURL)
}

func (c *Client) groupMembersURL(groupID string) string {
	return fmt.Sprintf("%s/groups/%s/members", c.BaseURL, groupID)
}

func (c *Client) groupThreadsURL(groupID string) string {
	return fmt.Sprintf("%s/groups/%s/threads", c.BaseURL, groupID)
}

func (c *Client) conversationThreadsURL(groupID, conversationID string) string {
	return fmt.Sprintf("%s/groups/%s/conversations/%s/threads", c.BaseURL, groupID, conversationID)
}

func (c *Client) threadReplyURL(groupID, conversationID, threadID string) string {
	return fmt.Sprintf("%s/groups/%s/conversations/%s/threads/%s/reply", c.BaseURL, groupID, conversationID, threadID)
}

func (c *Client) threadPostsURL(groupID, conversationID, threadID string) string {
	return fmt.Sprintf("%s/groups/%s/conversations/%s/threads/%s/posts", c.BaseURL, groupID, conversationID, threadID)
}
