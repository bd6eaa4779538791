package http

import (
	"kanbanpro/internal/adapter/http/handlers"
	"kanbanpro/internal/adapter/http/middleware"
	"kanbanpro/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UserHandler
	Boards      *handlers.BoardHandler
	Tasks       *handlers.TaskHandler
	Attachments *handlers.AttachmentHandler
}

func RegisterRoutes(r *gin.Engine, auth ports.AuthService, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(auth))
	{
		secured.POST("/auth/logout", h.Auth.Logout)
		secured.GET("/auth/me", h.Auth.Me)

		secured.GET("/users", h.Users.ListUsers)
		secured.GET("/users/:id/stats", h.Users.UserStats)

		secured.GET("/boards", h.Boards.ListBoards)
		secured.POST("/boards", h.Boards.CreateBoard)
		secured.GET("/boards/current", h.Boards.CurrentBoard)
		secured.PUT("/boards/current", h.Boards.SetCurrentBoard)
		secured.PATCH("/boards/:id", h.Boards.UpdateBoard)
		secured.DELETE("/boards/:id", h.Boards.DeleteBoard)
		secured.GET("/boards/:id/tasks", h.Boards.ListBoardTasks)
		secured.GET("/boards/:id/columns", h.Boards.BoardColumns)
		secured.GET("/boards/:id/analytics", h.Boards.BoardAnalytics)
		secured.GET("/boards/:id/calendar", h.Boards.BoardCalendar)

		secured.GET("/tasks", h.Tasks.ListCurrentTasks)
		secured.POST("/tasks", h.Tasks.CreateTask)
		secured.GET("/tasks/:id", h.Tasks.GetTask)
		secured.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		secured.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		secured.PUT("/tasks/:id/status", h.Tasks.MoveTask)
		secured.POST("/tasks/:id/pin", h.Tasks.TogglePin)
		secured.POST("/tasks/:id/comments", h.Tasks.AddComment)

		secured.POST("/tasks/:id/attachments", h.Attachments.UploadAttachment)
		secured.GET("/tasks/:id/attachments/:attachmentId", h.Attachments.DownloadAttachment)
		secured.DELETE("/tasks/:id/attachments/:attachmentId", h.Attachments.DeleteAttachment)
	}

	admin := secured.Group("/users")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", h.Users.CreateUser)
		admin.PATCH("/:id", h.Users.UpdateUser)
		admin.DELETE("/:id", h.Users.DeleteUser)
	}
}
