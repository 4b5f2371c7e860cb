package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/service"
)

// The actor parameters of the local contracts are implied by the bearer
// token here, so the remote methods ignore them.

// --- tasks ---

func (c *Client) List(ctx context.Context, page, size int, filter models.TaskFilter) (models.Response, error) {
	q := pagingValues(page, size)
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.AssigneeID != nil {
		q.Set("assigneeId", fmt.Sprint(*filter.AssigneeID))
	}
	env, err := c.do(ctx, http.MethodGet, "/api/tasks", q, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Page[models.Task]](env)
}

func (c *Client) Get(ctx context.Context, id int64) (models.Response, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Task](env)
}

func (c *Client) Create(ctx context.Context, _ int64, req models.CreateTaskRequest) (models.Response, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/tasks", nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Task](env)
}

func (c *Client) Update(ctx context.Context, _ int64, id int64, req models.UpdateTaskRequest) (models.Response, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Task](env)
}

func (c *Client) UpdateStatus(ctx context.Context, _ int64, id int64, status models.TaskStatus) (models.Response, error) {
	env, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", id), nil, models.UpdateTaskStatusRequest{Status: status})
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Task](env)
}

func (c *Client) Delete(ctx context.Context, _ int64, id int64) (models.Response, error) {
	env, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[struct{}](env)
}

func (c *Client) Search(ctx context.Context, query string, page, size int) (models.Response, error) {
	q := pagingValues(page, size)
	q.Set("query", query)
	env, err := c.do(ctx, http.MethodGet, "/api/tasks/search", q, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Page[models.Task]](env)
}

// --- comments ---

// Comments returns the comment capability of the client.
func (c *Client) Comments() service.CommentAPI { return (*commentClient)(c) }

type commentClient Client

func (c *commentClient) ListByTask(ctx context.Context, taskID int64, page, size int, sort string) (models.Response, error) {
	q := pagingValues(page, size)
	if sort != "" {
		q.Set("sort", sort)
	}
	env, err := (*Client)(c).do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d/comments", taskID), q, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Page[models.Comment]](env)
}

func (c *commentClient) Create(ctx context.Context, _ int64, taskID int64, req models.CreateCommentRequest) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", taskID), nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Comment](env)
}

func (c *commentClient) Update(ctx context.Context, taskID, commentID int64, content string) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d/comments/%d", taskID, commentID), nil, models.CreateCommentRequest{Content: content})
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Comment](env)
}

func (c *commentClient) Delete(ctx context.Context, taskID, commentID int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d/comments/%d", taskID, commentID), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[struct{}](env)
}

// --- teams ---

// Teams returns the team capability of the client.
func (c *Client) Teams() service.TeamAPI { return (*teamClient)(c) }

type teamClient Client

func (c *teamClient) List(ctx context.Context) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/teams", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.Team](env)
}

func (c *teamClient) Get(ctx context.Context, id int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, fmt.Sprintf("/api/teams/%d", id), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Team](env)
}

func (c *teamClient) Members(ctx context.Context, teamID int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, fmt.Sprintf("/api/teams/%d/members", teamID), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.User](env)
}

func (c *teamClient) Create(ctx context.Context, req models.CreateTeamRequest) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPost, "/api/teams", nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Team](env)
}

func (c *teamClient) Update(ctx context.Context, id int64, req models.UpdateTeamRequest) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPut, fmt.Sprintf("/api/teams/%d", id), nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Team](env)
}

func (c *teamClient) Delete(ctx context.Context, id int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodDelete, fmt.Sprintf("/api/teams/%d", id), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[struct{}](env)
}

func (c *teamClient) AddMember(ctx context.Context, teamID, userID int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPost, fmt.Sprintf("/api/teams/%d/members/%d", teamID, userID), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.User](env)
}

func (c *teamClient) RemoveMember(ctx context.Context, teamID, userID int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodDelete, fmt.Sprintf("/api/teams/%d/members/%d", teamID, userID), nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.User](env)
}

// --- users/auth ---

// Users returns the user capability of the client.
func (c *Client) Users() service.UserAPI { return (*userClient)(c) }

type userClient Client

// Login stores the returned bearer token for subsequent requests.
func (c *userClient) Login(ctx context.Context, req models.LoginRequest) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPost, "/api/auth/login", nil, req)
	if err != nil {
		return models.Response{}, err
	}
	resp, err := as[models.LoginResponse](env)
	if err != nil {
		return models.Response{}, err
	}
	if resp.Success {
		if lr, ok := resp.Data.(models.LoginResponse); ok && lr.Token != "" {
			c.tokens.SetToken(lr.Token)
		}
	}
	return resp, nil
}

func (c *userClient) Register(ctx context.Context, req models.RegisterRequest) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPost, "/api/auth/register", nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.User](env)
}

func (c *userClient) Me(ctx context.Context, _ int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/users/me", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.User](env)
}

func (c *userClient) List(ctx context.Context) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/users", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.User](env)
}

func (c *userClient) Available(ctx context.Context) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/users/available", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.User](env)
}

func (c *userClient) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, req)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.User](env)
}

// Withdraw clears the stored token once the account has been removed.
func (c *userClient) Withdraw(ctx context.Context, _ int64, password string) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodPost, "/api/auth/withdraw", nil, models.WithdrawRequest{Password: password})
	if err != nil {
		return models.Response{}, err
	}
	resp, err := as[struct{}](env)
	if err != nil {
		return models.Response{}, err
	}
	if resp.Success {
		c.tokens.Clear()
	}
	return resp, nil
}

// --- dashboard ---

// Dashboard returns the dashboard capability of the client.
func (c *Client) Dashboard() service.DashboardAPI { return (*dashboardClient)(c) }

type dashboardClient Client

func (c *dashboardClient) Stats(ctx context.Context, _ int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/dashboard/stats", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.DashboardStats](env)
}

func (c *dashboardClient) MyTasks(ctx context.Context, _ int64) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/dashboard/my-tasks", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.MyTaskSummary](env)
}

func (c *dashboardClient) TeamProgress(ctx context.Context) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/dashboard/team-progress", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[map[string]int](env)
}

func (c *dashboardClient) WeeklyTrend(ctx context.Context) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/dashboard/weekly-trend", nil, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[[]models.TrendPoint](env)
}

func (c *dashboardClient) Search(ctx context.Context, query string) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/search", url.Values{"query": {query}}, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.SearchResult](env)
}

// --- activities ---

// Activities returns the activity capability of the client.
func (c *Client) Activities() service.ActivityAPI { return (*activityClient)(c) }

type activityClient Client

func (c *activityClient) List(ctx context.Context, page, size int) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/activities", pagingValues(page, size), nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Page[models.Activity]](env)
}

func (c *activityClient) My(ctx context.Context, _ int64, page, size int) (models.Response, error) {
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/activities/my", pagingValues(page, size), nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Page[models.Activity]](env)
}

func (c *activityClient) Logs(ctx context.Context, page, size int, filter models.ActivityLogFilter) (models.Response, error) {
	q := pagingValues(page, size)
	if filter.Type != "" {
		q.Set("type", string(filter.Type))
	}
	if filter.UserID != nil {
		q.Set("userId", fmt.Sprint(*filter.UserID))
	}
	if filter.TaskID != nil {
		q.Set("taskId", fmt.Sprint(*filter.TaskID))
	}
	if filter.StartDate != "" {
		q.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("endDate", filter.EndDate)
	}
	env, err := (*Client)(c).do(ctx, http.MethodGet, "/api/activities", q, nil)
	if err != nil {
		return models.Response{}, err
	}
	return as[models.Page[models.ActivityLog]](env)
}

// Compile-time checks that the client satisfies every capability contract.
var (
	_ service.TaskAPI      = (*Client)(nil)
	_ service.CommentAPI   = (*commentClient)(nil)
	_ service.TeamAPI      = (*teamClient)(nil)
	_ service.UserAPI      = (*userClient)(nil)
	_ service.DashboardAPI = (*dashboardClient)(nil)
	_ service.ActivityAPI  = (*activityClient)(nil)
)
