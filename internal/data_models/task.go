package dto

import (
	"time"

	"task-service.com/task-service/internal/constants"
	model "task-service.com/task-service/internal/models"
)

// TaskRequestData is the body of POST /tasks and PUT /tasks/:id.
type TaskRequestData struct {
	Title       string                `json:"title" validate:"notblank,max=255"`
	Description *string               `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      *constants.TaskStatus `json:"status,omitempty" validate:"omitempty,task_status"`
	Priority    *constants.Priority   `json:"priority,omitempty" validate:"omitempty,task_priority"`
	Deadline    *time.Time            `json:"deadline,omitempty"`
	UserID      *int64                `json:"userId,omitempty" validate:"required,gt=0"`
}

// StatusOrDefault returns the requested status, TODO when none was sent.
func (r TaskRequestData) StatusOrDefault() constants.TaskStatus {
	if r.Status == nil {
		return constants.StatusTodo
	}
	return *r.Status
}

func (r TaskRequestData) PriorityOrDefault() constants.Priority {
	if r.Priority == nil {
		return constants.PriorityMedium
	}
	return *r.Priority
}

type TaskResponse struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	Status      constants.TaskStatus `json:"status"`
	Priority    constants.Priority   `json:"priority"`
	Deadline    *time.Time           `json:"deadline"`
	UserID      int64                `json:"userId"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func NewTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Deadline:    task.Deadline,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
