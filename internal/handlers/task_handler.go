package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/models"
)

// ListTasks handles GET /api/tasks
// Query params: page (0-based), size, status, search, assigneeId.
func (h *Handler) ListTasks(c *gin.Context) {
	page, size := paging(c)
	filter := models.TaskFilter{
		Status:     models.TaskStatus(c.Query("status")),
		Search:     c.Query("search"),
		AssigneeID: queryInt64(c, "assigneeId"),
	}

	resp, err := h.svc.Tasks.List(c.Request.Context(), page, size, filter)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetTask handles GET /api/tasks/:id
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// CreateTask handles POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Tasks.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// UpdateTask handles PUT /api/tasks/:id with a partial merge payload
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Tasks.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Tasks.UpdateStatus(c.Request.Context(), actorID(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Tasks.Delete(c.Request.Context(), actorID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// SearchTasks handles GET /api/tasks/search?query=
func (h *Handler) SearchTasks(c *gin.Context) {
	page, size := paging(c)
	resp, err := h.svc.Tasks.Search(c.Request.Context(), c.Query("query"), page, size)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
