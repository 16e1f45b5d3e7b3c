package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fajarp/task-tracker-api/internal/container"
	handlers "github.com/fajarp/task-tracker-api/internal/interface/http"
	"github.com/fajarp/task-tracker-api/internal/interface/middleware"
)

// TaskModule wires the owner-scoped task routes behind the auth gate.
type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.RequireAuth(container.GetTokens()))
	tasks.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		tasks.GET("", m.Handler.List)
		tasks.GET("/:id", m.Handler.Get)
		tasks.POST("", m.Handler.Create)
		tasks.PATCH("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
