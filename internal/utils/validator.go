package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends the error envelope and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorBody(formatBindError(err)))
		return false
	}
	return true
}

func formatBindError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			switch e.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("field '%s' is required", e.Field()))
			case "oneof":
				parts = append(parts, fmt.Sprintf("field '%s' must be one of: %s", e.Field(), e.Param()))
			case "min":
				parts = append(parts, fmt.Sprintf("field '%s' must be at least %s characters long", e.Field(), e.Param()))
			case "max":
				parts = append(parts, fmt.Sprintf("field '%s' must be at most %s characters long", e.Field(), e.Param()))
			default:
				parts = append(parts, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
			}
		}
		return strings.Join(parts, "; ")
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("field '%s' has invalid type, expected %s", jsonErr.Field, jsonErr.Type.String())
	}

	return "malformed JSON or invalid request body"
}
