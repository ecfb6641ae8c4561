package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-service.com/task-service/internal/constants"
	apperrors "task-service.com/task-service/internal/errors"
	model "task-service.com/task-service/internal/models"
	"task-service.com/task-service/internal/testutils"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupRepo(t *testing.T) (*TaskRepository, *testutils.Clock) {
	t.Helper()
	clock := testutils.NewClock(start)
	return NewTaskRepository(testutils.NewTestDB(t), WithClock(clock.Now)), clock
}

func saveTask(t *testing.T, repo *TaskRepository, task model.Task) *model.Task {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), &task))
	return &task
}

func ptrTime(t time.Time) *time.Time { return &t }

func ids(tasks []model.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func TestTaskRepository_SaveInsert(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	desc := "details"

	task := saveTask(t, repo, model.Task{
		Title:       "Write report",
		Description: &desc,
		Priority:    constants.PriorityHigh,
		Deadline:    ptrTime(start.Add(time.Hour)),
		UserID:      7,
	})

	assert.NotZero(t, task.ID)
	assert.Equal(t, constants.StatusTodo, task.Status)
	assert.Equal(t, start, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write report", found.Title)
	require.NotNil(t, found.Description)
	assert.Equal(t, desc, *found.Description)
	assert.Equal(t, constants.PriorityHigh, found.Priority)
	assert.Equal(t, int64(7), found.UserID)
	require.NotNil(t, found.Deadline)
	assert.True(t, found.Deadline.Equal(start.Add(time.Hour)))
	assert.True(t, found.CreatedAt.Equal(start))
	assert.True(t, found.UpdatedAt.Equal(start))
}

func TestTaskRepository_SaveInsertPastDeadline(t *testing.T) {
	repo, _ := setupRepo(t)

	task := saveTask(t, repo, model.Task{Title: "Late", Deadline: ptrTime(start.Add(-time.Minute)), UserID: 1})
	assert.Equal(t, constants.StatusOverdue, task.Status)

	found, err := repo.FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusOverdue, found.Status)
}

func TestTaskRepository_SaveUpdate(t *testing.T) {
	repo, clock := setupRepo(t)
	ctx := context.Background()

	task := saveTask(t, repo, model.Task{Title: "Original", Deadline: ptrTime(start.Add(time.Hour)), UserID: 3})

	clock.Advance(2 * time.Hour)
	task.Title = "Renamed"
	task.Status = constants.StatusInProgress
	require.NoError(t, repo.Save(ctx, task))

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title)
	assert.Equal(t, constants.StatusOverdue, found.Status, "past deadline overrides explicit status")
	assert.True(t, found.CreatedAt.Equal(start))
	assert.True(t, found.UpdatedAt.Equal(start.Add(2*time.Hour)))

	t.Run("clearing optional fields", func(t *testing.T) {
		found.Deadline = nil
		found.Description = nil
		found.Status = constants.StatusDone
		require.NoError(t, repo.Save(ctx, found))

		again, err := repo.FindByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Nil(t, again.Deadline)
		assert.Nil(t, again.Description)
		assert.Equal(t, constants.StatusDone, again.Status)
	})

	t.Run("missing row", func(t *testing.T) {
		ghost := &model.Task{ID: 9999, Title: "Ghost", UserID: 3}
		assert.ErrorIs(t, repo.Save(ctx, ghost), apperrors.ErrTaskNotFound)
	})
}

func TestTaskRepository_FindByIDMissing(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepository_Queries(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	todoHigh := saveTask(t, repo, model.Task{Title: "a", Priority: constants.PriorityHigh, UserID: 1})
	doneLow := saveTask(t, repo, model.Task{Title: "b", Status: constants.StatusDone, Priority: constants.PriorityLow, UserID: 1})
	overdue := saveTask(t, repo, model.Task{Title: "c", Deadline: ptrTime(start.Add(-time.Hour)), UserID: 1})
	doneLate := saveTask(t, repo, model.Task{Title: "d", Status: constants.StatusDone, Deadline: ptrTime(start.Add(-time.Hour)), UserID: 1})
	future := saveTask(t, repo, model.Task{Title: "e", Status: constants.StatusInProgress, Deadline: ptrTime(start.Add(48 * time.Hour)), UserID: 1})
	other := saveTask(t, repo, model.Task{Title: "f", Priority: constants.PriorityHigh, UserID: 2})

	t.Run("all by user", func(t *testing.T) {
		tasks, err := repo.FindAllByUser(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{todoHigh.ID, doneLow.ID, overdue.ID, doneLate.ID, future.ID}, ids(tasks))
	})

	t.Run("unknown user gets empty slice", func(t *testing.T) {
		tasks, err := repo.FindAllByUser(ctx, 99)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("by status", func(t *testing.T) {
		tasks, err := repo.FindByUserAndStatus(ctx, 1, constants.StatusDone)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{doneLow.ID, doneLate.ID}, ids(tasks))
	})

	t.Run("by priority", func(t *testing.T) {
		tasks, err := repo.FindByUserAndPriority(ctx, 1, constants.PriorityHigh)
		require.NoError(t, err)
		assert.Equal(t, []int64{todoHigh.ID}, ids(tasks))
	})

	t.Run("overdue candidates", func(t *testing.T) {
		tasks, err := repo.FindOverdueCandidates(ctx, 1, start)
		require.NoError(t, err)
		assert.Equal(t, []int64{overdue.ID}, ids(tasks))

		tasks, err = repo.FindOverdueCandidates(ctx, 1, start.Add(72*time.Hour))
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{overdue.ID, future.ID}, ids(tasks), "candidates include not-yet-marked tasks")
	})

	t.Run("optional filters", func(t *testing.T) {
		status := constants.StatusTodo
		priority := constants.PriorityHigh

		all, err := repo.FindByUserWithFilters(ctx, 1, nil, nil)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		byStatus, err := repo.FindByUserWithFilters(ctx, 1, &status, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{todoHigh.ID}, ids(byStatus))

		both, err := repo.FindByUserWithFilters(ctx, 1, &status, &priority)
		require.NoError(t, err)
		assert.Equal(t, []int64{todoHigh.ID}, ids(both))

		medium := constants.PriorityMedium
		none, err := repo.FindByUserWithFilters(ctx, 1, &status, &medium)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("exists and count", func(t *testing.T) {
		exists, err := repo.ExistsByIDAndUser(ctx, other.ID, 2)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByIDAndUser(ctx, other.ID, 1)
		require.NoError(t, err)
		assert.False(t, exists)

		count, err := repo.CountByUserAndStatus(ctx, 1, constants.StatusDone)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestTaskRepository_DeleteByID(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	task := saveTask(t, repo, model.Task{Title: "Doomed", UserID: 5})

	require.NoError(t, repo.DeleteByID(ctx, task.ID))

	_, err := repo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	assert.NoError(t, repo.DeleteByID(ctx, task.ID), "deleting a missing row is not an error")
}

func TestTaskRepository_Ping(t *testing.T) {
	repo, _ := setupRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
