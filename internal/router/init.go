package router

import (
	"github.com/fajarp/task-tracker-api/internal/application"
	"github.com/fajarp/task-tracker-api/internal/container"
	pginfra "github.com/fajarp/task-tracker-api/internal/infrastructure/postgres"
	handlers "github.com/fajarp/task-tracker-api/internal/interface/http"
	"github.com/fajarp/task-tracker-api/internal/router/modules"
)

// InitModules builds the user and task modules from the container
// singletons and registers them with the registry. Called once during
// startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(pool)
	userSvc := application.NewUserService(userRepo, container.GetTokens(), logger)
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))

	taskRepo := pginfra.NewTaskRepository(pool)
	taskSvc := application.NewTaskService(taskRepo, logger)
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger)))
}
