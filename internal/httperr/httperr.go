package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/foodgram/internal/logger"
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

func NotFoundJSON(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func UnauthorizedJSON(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func ForbiddenJSON(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Status maps an error kind onto an HTTP status. Conflicts are reported as
// 400: duplicate favorites, cart items and subscriptions are client errors.
func Status(kind Kind) int {
	switch kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err as a JSON error. Anything that is not a BusinessError
// is logged and reported as a 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		Write(c, Status(be.Kind), be.Code, msg)
		return
	}

	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "internal_error", "Internal server error.")
}

// InvalidRequest reports a binding or decoding failure.
func InvalidRequest(c *gin.Context, err error) {
	BadRequest(c, "invalid_request", err.Error())
}
