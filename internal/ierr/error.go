package ierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidArgument    ErrorCode = "InvalidArgument"
	ErrorCodeNotFound           ErrorCode = "NotFound"
	ErrorCodeAlreadyExists      ErrorCode = "AlreadyExists"
	ErrorCodeFailedPrecondition ErrorCode = "FailedPrecondition"
	ErrorCodePermissionDenied   ErrorCode = "PermissionDenied"
	ErrorCodeUnauthenticated    ErrorCode = "Unauthenticated"
	ErrorCodeInternal           ErrorCode = "Internal"
)

var httpStatusByCode = map[ErrorCode]int{
	ErrorCodeInvalidArgument:    http.StatusBadRequest,
	ErrorCodeNotFound:           http.StatusNotFound,
	ErrorCodeAlreadyExists:      http.StatusConflict,
	ErrorCodeFailedPrecondition: http.StatusPreconditionFailed,
	ErrorCodePermissionDenied:   http.StatusForbidden,
	ErrorCodeUnauthenticated:    http.StatusUnauthorized,
	ErrorCodeInternal:           http.StatusInternalServerError,
}

type Error struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`

	cause error
}

func New(code ErrorCode, cause error) Error {
	return Error{
		Code:    code,
		Message: cause.Error(),
		cause:   cause,
	}
}

func Newf(code ErrorCode, format string, args ...any) Error {
	return New(code, fmt.Errorf(format, args...))
}

func (e Error) Error() string {
	if e.cause == nil {
		return string(e.Code) + ": " + e.Message
	}

	return string(e.Code) + ": " + e.cause.Error()
}

func (e Error) Unwrap() error {
	return e.cause
}

func (e Error) HTTPStatus() int {
	status, ok := httpStatusByCode[e.Code]
	if !ok {
		return http.StatusInternalServerError
	}

	return status
}

// HasCode reports whether err carries an Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var coded Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}

	return false
}
