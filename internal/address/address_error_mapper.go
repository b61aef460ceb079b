package address

import (
	"errors"
	"net/http"

	addresserrors "github.com/vbasilioo/workly-web/internal/address/errors"
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
		return addresserrors.ErrAddressNotFound.WithDetail("", err)
	case appErr.Code == apperror.CodeConflict && appErr.HTTPStatus == http.StatusConflict:
		return addresserrors.ErrEmployeeHasAddress.WithDetail(appErr.Message, err)
	}
	return err
}
