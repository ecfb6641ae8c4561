package model

import (
	"time"

	"task-service.com/task-service/internal/constants"
)

// Task timestamps are owned by PrepareForCreate/PrepareForUpdate, so gorm's
// automatic time tracking is disabled on both columns.
type Task struct {
	ID          int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"size:255;not null" json:"title"`
	Description *string              `gorm:"size:1000" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	Deadline    *time.Time           `json:"deadline"`
	UserID      int64                `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time            `gorm:"autoCreateTime:false;not null" json:"createdAt"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime:false;not null" json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}

// PrepareForCreate stamps both timestamps, fills defaults and applies the
// overdue rule. It must run before every insert.
func (t *Task) PrepareForCreate(now time.Time) {
	now = normalizeTime(now)
	t.CreatedAt = now
	t.UpdatedAt = now
	t.applyDefaults()
	t.normalizeDeadline()
	t.checkOverdue(now)
}

// PrepareForUpdate refreshes UpdatedAt and applies the overdue rule. It must
// run before every update; CreatedAt is left alone.
func (t *Task) PrepareForUpdate(now time.Time) {
	now = normalizeTime(now)
	t.UpdatedAt = now
	t.applyDefaults()
	t.normalizeDeadline()
	t.checkOverdue(now)
}

// IsPastDeadline reports whether the deadline lies strictly before now.
func (t *Task) IsPastDeadline(now time.Time) bool {
	return t.Deadline != nil && now.After(*t.Deadline)
}

func (t *Task) applyDefaults() {
	if t.Status == "" {
		t.Status = constants.StatusTodo
	}
	if t.Priority == "" {
		t.Priority = constants.PriorityMedium
	}
}

func (t *Task) normalizeDeadline() {
	if t.Deadline == nil {
		return
	}
	d := normalizeTime(*t.Deadline)
	t.Deadline = &d
}

// DONE is the only status the overdue rule never overrides.
func (t *Task) checkOverdue(now time.Time) {
	if t.IsPastDeadline(now) && t.Status != constants.StatusDone {
		t.Status = constants.StatusOverdue
	}
}

// Stored timestamps are UTC with microsecond precision so SQLite and
// Postgres round-trip the same value.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
