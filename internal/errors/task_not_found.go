package errors

import "net/http"

// ErrTaskNotFound covers both a missing task and a task owned by someone
// else; callers must not be able to tell the two apart.
var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}
