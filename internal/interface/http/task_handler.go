package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fajarp/task-tracker-api/internal/application"
	"github.com/fajarp/task-tracker-api/internal/domain/repository"
	"github.com/fajarp/task-tracker-api/internal/interface/middleware"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
	"github.com/fajarp/task-tracker-api/pkg/response"
	"github.com/fajarp/task-tracker-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Name  string `json:"name" binding:"required"`
	DueAt string `json:"dueAt"`
}

// editTaskRequest is the explicit allow-list projection of a patch:
// struct decoding drops any other submitted key.
type editTaskRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	DueAt     *string `json:"dueAt"`
	Completed *bool   `json:"completed"`
}

// List handles GET /tasks. An empty list is a valid success.
func (h *TaskHandler) List(c *gin.Context) {
	uid, _ := middleware.UserIDFrom(c)
	tasks, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		response.Internal(c, h.Logger, err)
		return
	}
	response.Success(c, tasks, "Tasks Successfully Fetched")
}

// Get handles GET /tasks/:id. Lookup is by id only, not owner-scoped.
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, t, "Task Successfully Fetched")
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstDetail(validation.ToDetails(err)))
		return
	}

	in := application.CreateTaskInput{Name: req.Name}
	if req.DueAt != "" {
		due, err := helpers.ParseDate(req.DueAt)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "dueAt must be a valid date")
			return
		}
		in.DueAt = &due
	}

	uid, _ := middleware.UserIDFrom(c)
	t, err := h.Svc.Create(c.Request.Context(), uid, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, t, "Task Successfully Created")
}

// Update handles PATCH /tasks/:id.
func (h *TaskHandler) Update(c *gin.Context) {
	var req editTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstDetail(validation.ToDetails(err)))
		return
	}

	patch := repository.TaskPatch{Name: req.Name, Completed: req.Completed}
	if req.DueAt != nil {
		due, err := helpers.ParseDate(*req.DueAt)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "dueAt must be a valid date")
			return
		}
		if err := application.CheckDueAt(due); err != nil {
			h.fail(c, err)
			return
		}
		formatted := helpers.FormatDisplay(due)
		patch.DueAt = &formatted
	}

	uid, _ := middleware.UserIDFrom(c)
	t, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, t, "Task Successfully Updated")
}

// Delete handles DELETE /tasks/:id and returns the removed snapshot.
func (h *TaskHandler) Delete(c *gin.Context) {
	uid, _ := middleware.UserIDFrom(c)
	t, err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, t, "Task Successfully Deleted")
}

func (h *TaskHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrTaskNotFound):
		response.Error(c, http.StatusBadRequest, "Invalid Task Id")
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusBadRequest, "Not Authorized")
	case errors.Is(err, application.ErrDueAtPast):
		response.Error(c, http.StatusBadRequest, "dueAt must not be in the past")
	default:
		response.Internal(c, h.Logger, err)
	}
}
