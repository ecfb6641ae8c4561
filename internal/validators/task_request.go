package validators

import (
	"time"

	dto "task-service.com/task-service/internal/data_models"
)

// ValidateCreateTaskRequest checks a create body. The deadline, when given,
// must lie strictly after now.
func ValidateCreateTaskRequest(r *dto.TaskRequestData, now time.Time) error {
	verr := &ValidationError{}
	if err := collect(validate.Struct(r), verr); err != nil {
		return err
	}
	if r.Deadline != nil && !r.Deadline.After(now) {
		verr.add("deadline", "Deadline must be in the future")
	}
	if verr.empty() {
		return nil
	}
	return verr
}

// ValidateUpdateTaskRequest checks a full-update body. The caller identity
// comes from the transport, so userId is optional here, and deadlines are
// not re-checked against the clock.
func ValidateUpdateTaskRequest(r *dto.TaskRequestData) error {
	verr := &ValidationError{}
	if err := collect(validate.StructExcept(r, "UserID"), verr); err != nil {
		return err
	}
	if r.UserID != nil && *r.UserID <= 0 {
		verr.add("userId", "User ID must be a positive number")
	}
	if verr.empty() {
		return nil
	}
	return verr
}
