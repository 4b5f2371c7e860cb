package routes

import (
	"task-tracker-api/internal/auth"
	"task-tracker-api/internal/handlers"
	"task-tracker-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto a fresh gin engine.
func SetupRoutes(h *handlers.Handler, tokens *auth.TokenManager) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task tracker API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuth(tokens))
	{
		protectedRoutes.POST("/auth/withdraw", h.Withdraw)

		// Task endpoints
		protectedRoutes.GET("/tasks", h.ListTasks)
		protectedRoutes.GET("/tasks/search", h.SearchTasks)
		protectedRoutes.GET("/tasks/:id", h.GetTask)
		protectedRoutes.POST("/tasks", h.CreateTask)
		protectedRoutes.PUT("/tasks/:id", h.UpdateTask)
		protectedRoutes.PATCH("/tasks/:id/status", h.UpdateTaskStatus)
		protectedRoutes.DELETE("/tasks/:id", h.DeleteTask)

		// Comment endpoints (scoped under the owning task)
		protectedRoutes.GET("/tasks/:id/comments", h.ListComments)
		protectedRoutes.POST("/tasks/:id/comments", h.CreateComment)
		protectedRoutes.PUT("/tasks/:id/comments/:commentId", h.UpdateComment)
		protectedRoutes.DELETE("/tasks/:id/comments/:commentId", h.DeleteComment)

		// Team endpoints
		protectedRoutes.GET("/teams", h.ListTeams)
		protectedRoutes.GET("/teams/:id", h.GetTeam)
		protectedRoutes.GET("/teams/:id/members", h.GetTeamMembers)
		protectedRoutes.POST("/teams", h.CreateTeam)
		protectedRoutes.PUT("/teams/:id", h.UpdateTeam)
		protectedRoutes.DELETE("/teams/:id", h.DeleteTeam)
		protectedRoutes.POST("/teams/:id/members/:userId", h.AddTeamMember)
		protectedRoutes.DELETE("/teams/:id/members/:userId", h.RemoveTeamMember)

		// User endpoints
		protectedRoutes.GET("/users", h.GetUsers)
		protectedRoutes.GET("/users/available", h.GetAvailableUsers)
		protectedRoutes.GET("/users/me", h.GetCurrentUser)
		protectedRoutes.PUT("/users/:id", h.UpdateUser)

		// Dashboard endpoints
		protectedRoutes.GET("/dashboard/stats", h.GetDashboardStats)
		protectedRoutes.GET("/dashboard/my-tasks", h.GetMyTasks)
		protectedRoutes.GET("/dashboard/team-progress", h.GetTeamProgress)
		protectedRoutes.GET("/dashboard/weekly-trend", h.GetWeeklyTrend)

		// Activity endpoints (feed + reporting stream)
		protectedRoutes.GET("/activities", h.GetActivities)
		protectedRoutes.GET("/activities/my", h.GetMyActivities)

		// Cross-collection search
		protectedRoutes.GET("/search", h.Search)

		// Realtime events
		protectedRoutes.GET("/ws", h.WebSocket)
	}

	return ginRouter
}
