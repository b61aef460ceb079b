package user

import (
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	usererrors "github.com/vbasilioo/workly-web/internal/user/errors"
)

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
		return usererrors.ErrUserNotFound.WithDetail("", err)
	case appErr.Code == apperror.CodeConflict && appErr.HTTPStatus == http.StatusConflict:
		return usererrors.ErrUserAlreadyExists.WithDetail("", err)
	}
	return err
}
