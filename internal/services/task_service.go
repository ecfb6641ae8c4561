package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"task-service.com/task-service/internal/constants"
	dto "task-service.com/task-service/internal/data_models"
	apperrors "task-service.com/task-service/internal/errors"
	model "task-service.com/task-service/internal/models"
	"task-service.com/task-service/internal/validators"
)

type TaskService struct {
	repo    TaskStore
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*TaskService)

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskService) {
		s.logger = logger
	}
}

func WithBreaker(breaker *gobreaker.CircuitBreaker) Option {
	return func(s *TaskService) {
		s.breaker = breaker
	}
}

func NewTaskService(repo TaskStore, opts ...Option) *TaskService {
	s := &TaskService{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.breaker == nil {
		s.breaker = NewBreaker("taskService", DefaultBreakerSettings(), s.logger)
	}
	return s
}

// CreateTask validates the request and stores a new task owned by
// req.UserID. Status defaults to TODO and priority to MEDIUM.
func (s *TaskService) CreateTask(ctx context.Context, req dto.TaskRequestData) (*model.Task, error) {
	if err := validators.ValidateCreateTaskRequest(&req, s.now()); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating task", "user_id", *req.UserID)

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.StatusOrDefault(),
		Priority:    req.PriorityOrDefault(),
		Deadline:    req.Deadline,
		UserID:      *req.UserID,
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task created", "task_id", task.ID, "user_id", task.UserID, "status", task.Status)
	return task, nil
}

// GetTask returns ErrTaskNotFound both for missing tasks and for tasks
// owned by another user.
func (s *TaskService) GetTask(ctx context.Context, id, userID int64) (*model.Task, error) {
	s.logger.InfoContext(ctx, "getting task", "task_id", id, "user_id", userID)
	return s.findOwned(ctx, id, userID)
}

// ListTasks runs behind the circuit breaker. Any store failure, including
// an open breaker, degrades to an empty list.
func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]model.Task, error) {
	s.logger.InfoContext(ctx, "getting all tasks", "user_id", userID)

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.repo.FindAllByUser(ctx, userID)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "list tasks fallback", "user_id", userID, "error", err)
		return []model.Task{}, nil
	}
	return result.([]model.Task), nil
}

// UpdateTask replaces title, description, status, priority and deadline.
// Missing status/priority fall back to TODO/MEDIUM like on create.
func (s *TaskService) UpdateTask(ctx context.Context, id, userID int64, req dto.TaskRequestData) (*model.Task, error) {
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating task", "task_id", id, "user_id", userID)

	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.StatusOrDefault()
	task.Priority = req.PriorityOrDefault()
	task.Deadline = req.Deadline

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTaskStatus sets only the status. The overdue rule still runs, so a
// non-DONE status on a task past its deadline comes back as OVERDUE.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id, userID int64, status constants.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	s.logger.InfoContext(ctx, "updating task status", "task_id", id, "user_id", userID, "status", status)

	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask reports false when the task is missing or not owned.
func (s *TaskService) DeleteTask(ctx context.Context, id, userID int64) (bool, error) {
	s.logger.InfoContext(ctx, "deleting task", "task_id", id, "user_id", userID)

	if _, err := s.findOwned(ctx, id, userID); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *TaskService) TasksByStatus(ctx context.Context, userID int64, status constants.TaskStatus) ([]model.Task, error) {
	s.logger.InfoContext(ctx, "getting tasks by status", "user_id", userID, "status", status)
	return s.repo.FindByUserAndStatus(ctx, userID, status)
}

func (s *TaskService) TasksByPriority(ctx context.Context, userID int64, priority constants.Priority) ([]model.Task, error) {
	s.logger.InfoContext(ctx, "getting tasks by priority", "user_id", userID, "priority", priority)
	return s.repo.FindByUserAndPriority(ctx, userID, priority)
}

// OverdueTasks lists tasks past their deadline that are not DONE, whether
// or not a save has already marked them OVERDUE.
func (s *TaskService) OverdueTasks(ctx context.Context, userID int64) ([]model.Task, error) {
	s.logger.InfoContext(ctx, "getting overdue tasks", "user_id", userID)
	return s.repo.FindOverdueCandidates(ctx, userID, s.now())
}

// FilterTasks applies the optional filters; nil means no constraint.
func (s *TaskService) FilterTasks(
	ctx context.Context,
	userID int64,
	status *constants.TaskStatus,
	priority *constants.Priority,
) ([]model.Task, error) {
	s.logger.InfoContext(ctx, "getting filtered tasks",
		"user_id", userID,
		"status", optional(status),
		"priority", optional(priority))
	return s.repo.FindByUserWithFilters(ctx, userID, status, priority)
}

func (s *TaskService) CountByStatus(ctx context.Context, userID int64, status constants.TaskStatus) (int64, error) {
	s.logger.InfoContext(ctx, "counting tasks", "user_id", userID, "status", status)
	return s.repo.CountByUserAndStatus(ctx, userID, status)
}

func (s *TaskService) BelongsToUser(ctx context.Context, id, userID int64) (bool, error) {
	return s.repo.ExistsByIDAndUser(ctx, id, userID)
}

func (s *TaskService) findOwned(ctx context.Context, id, userID int64) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

func optional[T ~string](v *T) string {
	if v == nil {
		return "<any>"
	}
	return string(*v)
}
