package validators

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"task-service.com/task-service/internal/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so field errors line up with the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "task_status", func(fl validator.FieldLevel) bool {
		return constants.TaskStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "task_priority", func(fl validator.FieldLevel) bool {
		return constants.Priority(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validators: register " + tag + ": " + err.Error())
	}
}

// ValidationError holds one human-readable message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

// collect turns validator output into a ValidationError. Errors that are not
// field errors (e.g. a nil struct) are returned unchanged.
func collect(err error, into *ValidationError) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		into.add(fe.Field(), messageFor(fe))
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "notblank" {
			return "Title is required"
		}
		return "Title must be between 1 and 255 characters"
	case "description":
		return "Description cannot exceed 1000 characters"
	case "status":
		return "Status must be one of TODO, IN_PROGRESS, DONE, OVERDUE"
	case "priority":
		return "Priority must be one of LOW, MEDIUM, HIGH"
	case "userId":
		if fe.Tag() == "required" {
			return "User ID is required"
		}
		return "User ID must be a positive number"
	}
	return fe.Field() + " is invalid"
}
