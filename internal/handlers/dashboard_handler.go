package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/models"
)

// GetDashboardStats handles GET /api/dashboard/stats
func (h *Handler) GetDashboardStats(c *gin.Context) {
	resp, err := h.svc.Dashboard.Stats(c.Request.Context(), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetMyTasks handles GET /api/dashboard/my-tasks
func (h *Handler) GetMyTasks(c *gin.Context) {
	resp, err := h.svc.Dashboard.MyTasks(c.Request.Context(), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetTeamProgress handles GET /api/dashboard/team-progress
func (h *Handler) GetTeamProgress(c *gin.Context) {
	resp, err := h.svc.Dashboard.TeamProgress(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetWeeklyTrend handles GET /api/dashboard/weekly-trend
func (h *Handler) GetWeeklyTrend(c *gin.Context) {
	resp, err := h.svc.Dashboard.WeeklyTrend(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Search handles GET /api/search?query= across tasks, users and teams
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("query")
	if q == "" {
		badRequest(c, "query is required")
		return
	}
	resp, err := h.svc.Dashboard.Search(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetActivities handles GET /api/activities
// Without reporting filters it returns the activity feed; with any of
// type/userId/taskId/startDate/endDate it serves the reporting stream.
func (h *Handler) GetActivities(c *gin.Context) {
	page, size := paging(c)

	filter := models.ActivityLogFilter{
		Type:      models.ActivityType(c.Query("type")),
		UserID:    queryInt64(c, "userId"),
		TaskID:    queryInt64(c, "taskId"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if filter.Type != "" || filter.UserID != nil || filter.TaskID != nil || filter.StartDate != "" || filter.EndDate != "" {
		resp, err := h.svc.Activities.Logs(c.Request.Context(), page, size, filter)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Activities.List(c.Request.Context(), page, size)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetMyActivities handles GET /api/activities/my
func (h *Handler) GetMyActivities(c *gin.Context) {
	page, size := paging(c)
	resp, err := h.svc.Activities.My(c.Request.Context(), actorID(c), page, size)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
