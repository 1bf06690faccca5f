package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	importerdomain "github.com/strideworks/paceline/internal/importer/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware renders the last gin error as a JSON envelope when
// no handler has written a response yet.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	var vErr *ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case errors.Is(err, importerdomain.ErrNotCSV):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_file",
			Message: "only .csv files are accepted",
		}
	case errors.Is(err, importerdomain.ErrEmptyFile):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_file",
			Message: "uploaded file is empty",
		}
	case errors.Is(err, importerdomain.ErrNoDataRows):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_file",
			Message: "file contains no data rows",
		}
	case errors.Is(err, importerdomain.ErrMissingHeaders):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_file",
			Message: "file is missing the expected activity headers",
		}
	case errors.Is(err, importerdomain.ErrUnreadableFile):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_file",
			Message: "file could not be read as CSV",
		}
	case errors.Is(err, activitydomain.ErrInvalidID):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "invalid activity id",
		}
	case errors.Is(err, activitydomain.ErrNotFound),
		errors.Is(err, importerdomain.ErrRecordNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}
