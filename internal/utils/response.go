package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform failure payload: every endpoint either fully
// succeeds or fully fails with {error: string}.
type ErrorBody struct {
	Error string `json:"error"`
}

// NewErrorBody wraps a message in the standard error envelope.
func NewErrorBody(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// AbortWithError writes the error envelope and records the error on the gin
// context so the logging middleware picks it up.
func AbortWithError(c *gin.Context, status int, err error) {
	c.Error(err) //nolint:errcheck
	c.AbortWithStatusJSON(status, NewErrorBody(err.Error()))
}
