package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/models"
)

// GetUsers handles GET /api/users
func (h *Handler) GetUsers(c *gin.Context) {
	resp, err := h.svc.Users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetAvailableUsers handles GET /api/users/available (the assignable set)
func (h *Handler) GetAvailableUsers(c *gin.Context) {
	resp, err := h.svc.Users.Available(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetCurrentUser handles GET /api/users/me
func (h *Handler) GetCurrentUser(c *gin.Context) {
	resp, err := h.svc.Users.Me(c.Request.Context(), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// UpdateUser handles PUT /api/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Users.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
