package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth ports.Authenticator) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/auth/session", h.Auth.Session)
	}

	private := api.Group("")
	private.Use(middleware.RequireSession(auth))
	{
		private.POST("/auth/logout", h.Auth.Logout)
		private.PATCH("/auth/profile", h.Auth.UpdateProfile)

		private.GET("/tasks", h.Tasks.ListTasks)
		private.POST("/tasks", h.Tasks.CreateTask)
		private.POST("/tasks/reload", h.Tasks.ReloadTasks)
		private.PUT("/tasks/:id", h.Tasks.EditTask)
		private.PUT("/tasks/:id/status", h.Tasks.SetTaskStatus)
		private.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		private.PUT("/view", h.Tasks.SetView)
		private.POST("/view/completed/toggle", h.Tasks.ToggleCompleted)
		private.POST("/view/incomplete/toggle", h.Tasks.ToggleIncomplete)
	}
}

// NewRouter builds the engine with the access log and the API routes.
func NewRouter(h Handlers, auth ports.Authenticator, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.GinZapMiddleware(zap.L()))
	RegisterRoutes(r, h, auth)
	return r, nil
}
