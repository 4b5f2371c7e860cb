package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/models"
)

// ListComments handles GET /api/tasks/:id/comments
// Query params: page, size, sort (newest|oldest, default newest).
func (h *Handler) ListComments(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := paging(c)
	sort := c.DefaultQuery("sort", models.SortNewest)

	resp, err := h.svc.Comments.ListByTask(c.Request.Context(), taskID, page, size, sort)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// CreateComment handles POST /api/tasks/:id/comments
func (h *Handler) CreateComment(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Comments.Create(c.Request.Context(), actorID(c), taskID, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// UpdateComment handles PUT /api/tasks/:id/comments/:commentId
func (h *Handler) UpdateComment(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Comments.Update(c.Request.Context(), taskID, commentID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// DeleteComment handles DELETE /api/tasks/:id/comments/:commentId
func (h *Handler) DeleteComment(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	resp, err := h.svc.Comments.Delete(c.Request.Context(), taskID, commentID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
