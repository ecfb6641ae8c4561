package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-service.com/task-service/internal/constants"
	apperrors "task-service.com/task-service/internal/errors"
	model "task-service.com/task-service/internal/models"
)

type TaskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

type Option func(*TaskRepository)

// WithClock replaces the time source used to stamp and overdue-check
// tasks on save.
func WithClock(now func() time.Time) Option {
	return func(r *TaskRepository) {
		r.now = now
	}
}

func NewTaskRepository(db *gorm.DB, opts ...Option) *TaskRepository {
	r := &TaskRepository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindByID does not check ownership; callers compare UserID themselves.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

func (r *TaskRepository) FindAllByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	return r.find("find tasks by user", r.byUser(ctx, userID))
}

func (r *TaskRepository) FindByUserAndStatus(ctx context.Context, userID int64, status constants.TaskStatus) ([]model.Task, error) {
	return r.find("find tasks by status", r.byUser(ctx, userID).Where("status = ?", status))
}

func (r *TaskRepository) FindByUserAndPriority(ctx context.Context, userID int64, priority constants.Priority) ([]model.Task, error) {
	return r.find("find tasks by priority", r.byUser(ctx, userID).Where("priority = ?", priority))
}

// FindOverdueCandidates returns tasks whose deadline is before now and whose
// status is anything but DONE, including tasks already marked OVERDUE.
func (r *TaskRepository) FindOverdueCandidates(ctx context.Context, userID int64, now time.Time) ([]model.Task, error) {
	query := r.byUser(ctx, userID).
		Where("deadline IS NOT NULL AND deadline < ? AND status <> ?", now.UTC(), constants.StatusDone)
	return r.find("find overdue tasks", query)
}

// FindByUserWithFilters treats a nil filter as "match all".
func (r *TaskRepository) FindByUserWithFilters(
	ctx context.Context,
	userID int64,
	status *constants.TaskStatus,
	priority *constants.Priority,
) ([]model.Task, error) {
	query := r.byUser(ctx, userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if priority != nil {
		query = query.Where("priority = ?", *priority)
	}
	return r.find("find filtered tasks", query)
}

func (r *TaskRepository) ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check task ownership: %w", err)
	}
	return count > 0, nil
}

func (r *TaskRepository) CountByUserAndStatus(ctx context.Context, userID int64, status constants.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// Save inserts the task when it has no ID and updates every mutable column
// otherwise. Timestamps and the overdue rule are applied before the write.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if task.ID == 0 {
		return r.create(ctx, task)
	}
	return r.update(ctx, task)
}

func (r *TaskRepository) create(ctx context.Context, task *model.Task) error {
	task.PrepareForCreate(r.now())

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) update(ctx context.Context, task *model.Task) error {
	task.PrepareForUpdate(r.now())

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"deadline":    task.Deadline,
			"updated_at":  task.UpdatedAt,
		})

	if res.Error != nil {
		return fmt.Errorf("update task %d: %w", task.ID, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// Ping checks that the database answers.
func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *TaskRepository) byUser(ctx context.Context, userID int64) *gorm.DB {
	return r.db.WithContext(ctx).Where("user_id = ?", userID)
}

// Ordering is not part of the contract; id order just keeps output stable.
func (r *TaskRepository) find(op string, query *gorm.DB) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	if err := query.Order("id asc").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}
