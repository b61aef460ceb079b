package settingerrors

import (
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Setting not found",
		http.StatusNotFound,
	)
	ErrSettingKeyExists = apperror.New(
		apperror.CodeConflict,
		"A setting with this key already exists",
		http.StatusConflict,
	)
	ErrInvalidSettingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid setting ID",
		http.StatusBadRequest,
	)
	ErrInvalidKey = apperror.New(
		apperror.CodeInvalidInput,
		"Key may only contain lowercase letters, numbers and underscores",
		http.StatusBadRequest,
	)
	ErrKeyImmutable = apperror.New(
		apperror.CodeInvalidInput,
		"Setting key cannot be changed",
		http.StatusBadRequest,
	)
	ErrValueRequired = apperror.RequiredField("Value")
	ErrInvalidValue  = apperror.InvalidField("Value")
	ErrInvalidKind   = apperror.InvalidField("Value Type")
)
