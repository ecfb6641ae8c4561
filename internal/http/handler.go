package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-service.com/task-service/internal/data_models"
	apperrors "task-service.com/task-service/internal/errors"
	"task-service.com/task-service/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Tasks retrieved successfully", dto.NewTaskResponses(tasks)))
}

func (h *Handler) GetTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Task retrieved successfully", dto.NewTaskResponse(task)))
}

func (h *Handler) CreateTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequestData
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if req.UserID != nil && *req.UserID != userID {
		return apperrors.ErrUserIDMismatch
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Task created successfully", dto.NewTaskResponse(task)))
}

// UpdateTask replaces the task. userId may be omitted from the body; when
// present it has to match the caller.
func (h *Handler) UpdateTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequestData
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if req.UserID != nil && *req.UserID != userID {
		return apperrors.ErrUserIDMismatch
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Task updated successfully", dto.NewTaskResponse(task)))
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}
	status, err := requiredStatus(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request().Context(), id, userID, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Task status updated successfully", dto.NewTaskResponse(task)))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	deleted, err := h.taskService.DeleteTask(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}

	return c.JSON(http.StatusOK, dto.Success[any]("Task deleted successfully", nil))
}

func (h *Handler) TasksByStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	status, err := requiredStatus(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.TasksByStatus(c.Request().Context(), userID, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Tasks filtered by status", dto.NewTaskResponses(tasks)))
}

func (h *Handler) TasksByPriority(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	priority, err := optionalPriority(c)
	if err != nil {
		return err
	}
	if priority == nil {
		return apperrors.ErrInvalidPriority
	}

	tasks, err := h.taskService.TasksByPriority(c.Request().Context(), userID, *priority)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Tasks filtered by priority", dto.NewTaskResponses(tasks)))
}

func (h *Handler) OverdueTasks(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.OverdueTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Overdue tasks retrieved", dto.NewTaskResponses(tasks)))
}

func (h *Handler) FilterTasks(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	status, err := optionalStatus(c)
	if err != nil {
		return err
	}
	priority, err := optionalPriority(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.FilterTasks(c.Request().Context(), userID, status, priority)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Tasks filtered successfully", dto.NewTaskResponses(tasks)))
}

func (h *Handler) CountByStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	status, err := requiredStatus(c)
	if err != nil {
		return err
	}

	count, err := h.taskService.CountByStatus(c.Request().Context(), userID, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Task count retrieved", count))
}

func (h *Handler) BelongsToUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	belongs, err := h.taskService.BelongsToUser(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("Task ownership checked", belongs))
}
