package mockapi

import (
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// errorBody mirrors the NestJS exception payload the real API answers with.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error"`
}

func abort(c *gin.Context, status int, message any) {
	c.AbortWithStatusJSON(status, errorBody{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

func notFound(c *gin.Context, label string) {
	abort(c, http.StatusNotFound, label+" not found")
}

// badRequest reports a binding or validation failure as a message list.
func badRequest(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		err = apperror.MapValidationError(err)
	}
	abort(c, http.StatusBadRequest, []string{apperror.ToHTTP(err).Message})
}

// bind decodes the JSON body, then runs the request's own checks.
func bind[T interface{ Validate() error }](c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err)
		return false
	}
	if err := (*req).Validate(); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}
