// Package handlers binds the REST endpoints to the domain services. Expected
// failures arrive here already wrapped in failure envelopes; only unexpected
// errors are degraded to a generic envelope with a 500.
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/middleware"
	"task-tracker-api/internal/models"
	"task-tracker-api/internal/realtime"
	"task-tracker-api/internal/service"
)

// Handler carries the composed services; one instance serves all routes.
type Handler struct {
	svc *service.Services
	hub *realtime.Hub
}

// New builds a Handler over the composed services.
func New(svc *service.Services, hub *realtime.Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

// respond writes an envelope. The success flag is the client contract; the
// status code is HTTP hygiene on top of it.
func respond(c *gin.Context, status int, resp models.Response) {
	if !resp.Success && status < http.StatusBadRequest {
		status = http.StatusBadRequest
	}
	c.JSON(status, resp)
}

// fail degrades an unexpected error to a generic failure envelope so clients
// never need to distinguish infrastructure failure from business failure.
func fail(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, models.Fail("An unexpected error occurred"))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.Fail(msg))
}

// actorID returns the authenticated user id set by the JWT middleware.
func actorID(c *gin.Context) int64 {
	return c.GetInt64(middleware.CtxUserID)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// paging reads the 0-based page and size query params with defaults.
func paging(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	return page, size
}

func queryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
