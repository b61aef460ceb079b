package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

var ErrServer = apperror.New(
	apperror.CodeInternalError,
	"The API failed to process the request",
	http.StatusBadGateway,
)

// errorBody is the error shape returned by the API. message is a string or a
// list of validation messages.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func parseMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(eb.Message, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var many []string
	if err := json.Unmarshal(eb.Message, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return ""
}

// statusError turns a non-2xx response into a typed error.
func statusError(status int, body []byte) error {
	msg := parseMessage(body)
	cause := fmt.Errorf("api responded %d", status)

	var base *apperror.AppError
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		base = apperror.ErrInvalidInput
	case status == http.StatusConflict:
		base = apperror.New(apperror.CodeConflict, "The request conflicts with existing data", http.StatusConflict)
	case status == http.StatusUnauthorized:
		base = apperror.ErrUnauthorized
	case status == http.StatusForbidden:
		base = apperror.ErrForbidden
	case status == http.StatusNotFound:
		base = apperror.ErrNotFound
	case status >= 500:
		base = ErrServer
	default:
		base = apperror.ErrInvalidInput
	}

	out := base.WithDetail(msg, cause)
	if status < 500 {
		out.HTTPStatus = status
	}
	return out
}

func networkError(err error) error {
	return apperror.ErrNetwork.WithDetail("", err)
}

// countsAsFailure reports whether err should trip the breaker.
func countsAsFailure(err error) bool {
	if err == nil {
		return false
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code == apperror.CodeNetworkError || appErr.Code == apperror.CodeInternalError
	}
	return true
}
