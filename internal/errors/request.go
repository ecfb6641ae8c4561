package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskID = &Exception{
	Message:    "task id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of TODO, IN_PROGRESS, DONE, OVERDUE",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of LOW, MEDIUM, HIGH",
	StatusCode: http.StatusBadRequest,
}
