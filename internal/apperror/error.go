package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "validation"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// GetCode reports CodeInternal for any error that is not an *Error.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

func IsValidation(err error) bool {
	return GetCode(err) == CodeValidation
}

// IsUserFacing reports whether err was caused by the answers given rather than
// by the store.
func IsUserFacing(err error) bool {
	return IsValidation(err) || GetCode(err) == CodeConflict
}
