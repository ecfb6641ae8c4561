package constants

import "strings"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
	StatusOverdue    TaskStatus = "OVERDUE"
)

var taskStatuses = []TaskStatus{
	StatusTodo,
	StatusInProgress,
	StatusDone,
	StatusOverdue,
}

// TaskStatuses returns every known status in declaration order.
func TaskStatuses() []TaskStatus {
	out := make([]TaskStatus, len(taskStatuses))
	copy(out, taskStatuses)
	return out
}

func (s TaskStatus) Valid() bool {
	for _, known := range taskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus accepts status names case-insensitively.
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	s := TaskStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", false
	}
	return s, true
}
