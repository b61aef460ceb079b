package setting

import (
	"errors"
	"net/http"

	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
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
		return settingerrors.ErrSettingNotFound.WithDetail("", err)
	case appErr.Code == apperror.CodeConflict && appErr.HTTPStatus == http.StatusConflict:
		return settingerrors.ErrSettingKeyExists.WithDetail("", err)
	}
	return err
}
