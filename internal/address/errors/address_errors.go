package addresserrors

import (
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)
	ErrEmployeeHasAddress = apperror.New(
		apperror.CodeConflict,
		"Employee already has an address",
		http.StatusConflict,
	)
	ErrInvalidAddressID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address ID",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.RequiredField("Employee Id")
)
