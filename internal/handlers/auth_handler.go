package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/models"
)

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Username and password are required")
		return
	}

	resp, err := h.svc.Users.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	if !resp.Success {
		respond(c, http.StatusUnauthorized, resp)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Users.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Withdraw handles POST /api/auth/withdraw; the password is re-checked
// before the account is removed.
func (h *Handler) Withdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Users.Withdraw(c.Request.Context(), actorID(c), req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
