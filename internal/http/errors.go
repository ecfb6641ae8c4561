package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-service.com/task-service/internal/data_models"
	apperrors "task-service.com/task-service/internal/errors"
	"task-service.com/task-service/internal/validators"
)

// ErrorHandler renders every error returned by a handler or middleware
// into the response envelope. Not found is an empty 404.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		}

		var writeErr error
		switch {
		case body == nil || c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(status)
		default:
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

func render(err error) (int, *dto.ErrorResponse) {
	var (
		validationErr *validators.ValidationError
		appErr        *apperrors.Exception
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.Is(err, apperrors.ErrTaskNotFound):
		return http.StatusNotFound, nil
	case errors.As(err, &validationErr):
		body := dto.Failure("Validation failed", validationErr.Fields)
		return http.StatusBadRequest, &body
	case errors.As(err, &appErr):
		body := dto.Failure(appErr.Message, nil)
		return appErr.StatusCode, &body
	case errors.As(err, &httpErr):
		body := dto.Failure(fmt.Sprint(httpErr.Message), nil)
		return httpErr.Code, &body
	default:
		body := dto.Failure(apperrors.Message(err), nil)
		return http.StatusInternalServerError, &body
	}
}
