package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrTaskNotFound))
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("get task: %w", ErrTaskNotFound)))
	assert.Equal(t, http.StatusBadRequest, StatusCode(ErrUserIDMismatch))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("disk on fire")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "task not found", Message(ErrTaskNotFound))
	assert.Equal(t, "internal server error", Message(errors.New("connection refused")))
}
