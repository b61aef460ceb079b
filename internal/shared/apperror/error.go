package apperror

import "fmt"

type AppError struct {
	Code       string // INVALID_INPUT, NOT_FOUND, ...
	Message    string // safe to show to the user
	HTTPStatus int
	Err        error // cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches copies made with WithDetail that kept the message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithDetail copies e, replacing the message when one is given and attaching cause.
func (e *AppError) WithDetail(message string, cause error) *AppError {
	out := *e
	if message != "" {
		out.Message = message
	}
	out.Err = cause
	return &out
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap returns nil when err is nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
