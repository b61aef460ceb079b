package apperror

import "errors"

// Kind groups error codes into the failure classes callers react to.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindNetwork    Kind = "network"
	KindServer     Kind = "server"
)

// KindOf classifies err. Errors that are not *AppError are treated as server errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return KindServer
	}

	switch appErr.Code {
	case CodeInvalidInput, CodeConflict, CodeInvalidState:
		return KindValidation
	case CodeUnauthorized, CodeForbidden:
		return KindAuth
	case CodeNotFound:
		return KindNotFound
	case CodeNetworkError, CodeServiceUnavailable:
		return KindNetwork
	default:
		return KindServer
	}
}

func IsValidation(err error) bool { return err != nil && KindOf(err) == KindValidation }
func IsAuth(err error) bool       { return err != nil && KindOf(err) == KindAuth }
func IsNotFound(err error) bool   { return err != nil && KindOf(err) == KindNotFound }
func IsNetwork(err error) bool    { return err != nil && KindOf(err) == KindNetwork }
