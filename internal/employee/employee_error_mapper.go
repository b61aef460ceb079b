package employee

import (
	"errors"
	"net/http"

	employeeerrors "github.com/vbasilioo/workly-web/internal/employee/errors"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

// mapClientError swaps generic API errors for employee ones, keeping the API's message.
func mapClientError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch {
	case appErr.Code == apperror.CodeNotFound:
		return employeeerrors.ErrEmployeeNotFound.WithDetail("", err)
	case appErr.Code == apperror.CodeConflict && appErr.HTTPStatus == http.StatusConflict:
		return employeeerrors.ErrEmployeeAlreadyExists.WithDetail("", err)
	}
	return err
}
