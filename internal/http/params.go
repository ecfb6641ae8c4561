package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"task-service.com/task-service/internal/constants"
	apperrors "task-service.com/task-service/internal/errors"
)

const HeaderUserID = "X-User-ID"

// callerID reads the caller identity set by the gateway in front of us.
func callerID(c echo.Context) (int64, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	if raw == "" {
		return 0, apperrors.ErrUserIDRequired
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidUserID
	}
	return id, nil
}

func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return id, nil
}

func optionalStatus(c echo.Context) (*constants.TaskStatus, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}
	status, ok := constants.ParseTaskStatus(raw)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}
	return &status, nil
}

func requiredStatus(c echo.Context) (constants.TaskStatus, error) {
	status, err := optionalStatus(c)
	if err != nil {
		return "", err
	}
	if status == nil {
		return "", apperrors.ErrInvalidStatus
	}
	return *status, nil
}

func optionalPriority(c echo.Context) (*constants.Priority, error) {
	raw := c.QueryParam("priority")
	if raw == "" {
		return nil, nil
	}
	priority, ok := constants.ParsePriority(raw)
	if !ok {
		return nil, apperrors.ErrInvalidPriority
	}
	return &priority, nil
}
