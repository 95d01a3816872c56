package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError represents a structured library error
type AppError struct {
	Code    string
	Message string
	Params  []string // offending parameter names, if any
	Cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if len(e.Params) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Params, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError carrying the same code, so sentinel values work with
// errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// GetParams returns the offending parameter names carried by an AppError
func GetParams(err error) []string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Params
	}
	return nil
}

// Predefined error codes
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotSupported    = "NOT_SUPPORTED"
	CodeNullReference   = "NULL_REFERENCE"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Sentinels for errors.Is
var (
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid argument")
	ErrNotSupported    = New(CodeNotSupported, "not supported")
	ErrNullReference   = New(CodeNullReference, "null reference")
)

// InvalidArgument reports a parameter or range violation, naming the
// offending parameters.
func InvalidArgument(message string, params ...string) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: message,
		Params:  params,
	}
}

// NotSupported reports a statistical property that has no closed form for
// the current parameters.
func NotSupported(message string) *AppError {
	return New(CodeNotSupported, message)
}

// NullReference reports a missing required collaborator.
func NullReference(name string) *AppError {
	return &AppError{
		Code:    CodeNullReference,
		Message: fmt.Sprintf("%s must not be nil", name),
		Params:  []string{name},
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func IsInvalidArgument(err error) bool {
	return stderrors.Is(err, ErrInvalidArgument)
}

func IsNotSupported(err error) bool {
	return stderrors.Is(err, ErrNotSupported)
}

func IsNullReference(err error) bool {
	return stderrors.Is(err, ErrNullReference)
}
