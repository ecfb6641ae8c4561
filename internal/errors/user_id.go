package errors

import "net/http"

var ErrUserIDRequired = &Exception{
	Message:    "X-User-ID header is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidUserID = &Exception{
	Message:    "X-User-ID header must be a positive integer",
	StatusCode: http.StatusBadRequest,
}

var ErrUserIDMismatch = &Exception{
	Message:    "User ID in header does not match user ID in request body",
	StatusCode: http.StatusBadRequest,
}
