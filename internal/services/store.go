package services

import (
	"context"
	"time"

	"task-service.com/task-service/internal/constants"
	model "task-service.com/task-service/internal/models"
)

// TaskStore is the persistence boundary TaskService works against.
// Save must apply the timestamp and overdue rules before writing.
type TaskStore interface {
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindAllByUser(ctx context.Context, userID int64) ([]model.Task, error)
	FindByUserAndStatus(ctx context.Context, userID int64, status constants.TaskStatus) ([]model.Task, error)
	FindByUserAndPriority(ctx context.Context, userID int64, priority constants.Priority) ([]model.Task, error)
	FindOverdueCandidates(ctx context.Context, userID int64, now time.Time) ([]model.Task, error)
	FindByUserWithFilters(ctx context.Context, userID int64, status *constants.TaskStatus, priority *constants.Priority) ([]model.Task, error)
	ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error)
	CountByUserAndStatus(ctx context.Context, userID int64, status constants.TaskStatus) (int64, error)
	Save(ctx context.Context, task *model.Task) error
	DeleteByID(ctx context.Context, id int64) error
}
