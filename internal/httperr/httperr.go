package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Handle maps a classified error to its HTTP status. Internal errors
// are logged with context and surfaced as a generic retryable failure.
func Handle(c *gin.Context, log *zap.Logger, err error) {
	var e *Error
	if !errors.As(err, &e) {
		log.Error("unexpected error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	switch e.Kind {
	case KindUnauthenticated:
		Unauthorized(c, e.Code, e.Message)
	case KindPermissionDenied:
		Forbidden(c, e.Code, e.Message)
	case KindInvalidArgument:
		BadRequest(c, e.Code, e.Message)
	case KindNotFound:
		NotFound(c, e.Code, e.Message)
	case KindFailedPrecondition:
		Conflict(c, e.Code, e.Message)
	default:
		log.Error("internal error",
			zap.String("path", c.FullPath()),
			zap.String("code", e.Code),
			zap.Error(err),
		)
		Internal(c, "internal_error", "Something went wrong. Please try again.")
	}
}
