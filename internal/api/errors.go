package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitbook/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindValidation ErrorKind = "validation"
	KindInternal   ErrorKind = "internal"
)

// Error is the client-facing error carried from services to handlers.
type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Validation(field, reason string) *Error {
	return &Error{Kind: KindValidation, Message: reason, Field: field}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: err}
}

// KindOf classifies any error; errors without an api.Error in their
// chain are treated as internal.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// RespondError maps an error to the HTTP boundary. NotFound, Conflict and
// Validation all surface as 400 with the message; anything else is a 500
// with the detail kept server-side.
func RespondError(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind != KindInternal {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: apiErr.Message,
			Kind:  string(apiErr.Kind),
			Field: apiErr.Field,
		})
		return
	}

	logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Kind:  string(KindInternal),
	})
}
