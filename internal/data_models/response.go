package dto

// APIResponse is the envelope for every successful response.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func Success[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse is returned for client and server errors. Errors holds one
// message per invalid field when the failure came from validation.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Failure(message string, fieldErrors map[string]string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Errors:  fieldErrors,
	}
}
