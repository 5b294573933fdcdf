package app_error

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError covers malformed, missing or conflicting input. Details
// carries one entry per problem so a payload missing several required fields
// reports all of them at once.
type ValidationError struct {
	Message string
	Details []string
}

func NewValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, ", "))
	}
	return e.Message
}

func (e *ValidationError) HTTPStatus() int {
	return 400
}

// NotFoundError signals that a referenced identifier does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) HTTPStatus() int {
	return 404
}

// PersistenceError surfaces a storage constraint violation from a rolled
// back write. The driver message is kept for diagnostics.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) HTTPStatus() int {
	return 400
}

type statusError interface {
	error
	HTTPStatus() int
}

// Respond maps err onto its HTTP status and writes the structured error
// body. Unknown errors become a 500.
func Respond(c *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Details) > 0 {
		c.JSON(validationErr.HTTPStatus(), gin.H{"error": validationErr.Message, "details": validationErr.Details})
		return
	}
	var statusErr statusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.HTTPStatus(), gin.H{"error": statusErr.Error()})
		return
	}
	c.JSON(500, gin.H{"error": err.Error()})
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}
