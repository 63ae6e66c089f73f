package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// Is matches on the error code so callers can compare against the sentinels below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// StatusCode returns the HTTP status associated with the error code.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrUnauthorized, ErrTokenNotProvided, ErrInvalidSignature, ErrExpired, ErrMalformedToken, ErrInvalidCredentials:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrUnauthorized
	ErrForbidden
	ErrInternal
	ErrTokenNotProvided
	ErrInvalidSignature
	ErrExpired
	ErrMalformedToken
	ErrInvalidCredentials
)

// Sentinels for errors.Is comparisons.
var (
	NotFoundError           = &AppError{Code: ErrNotFound}
	BadRequestError         = &AppError{Code: ErrBadRequest}
	ForbiddenError          = &AppError{Code: ErrForbidden}
	TokenNotProvidedError   = &AppError{Code: ErrTokenNotProvided}
	InvalidSignatureError   = &AppError{Code: ErrInvalidSignature}
	ExpiredError            = &AppError{Code: ErrExpired}
	MalformedTokenError     = &AppError{Code: ErrMalformedToken}
	InvalidCredentialsError = &AppError{Code: ErrInvalidCredentials}
)

// Error constructors
func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NewForbidden(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{
		Code:    ErrForbidden,
		Message: message,
	}
}

// Credential errors
func TokenNotProvided() *AppError {
	return &AppError{Code: ErrTokenNotProvided, Message: "token not provided"}
}

func InvalidSignature(err error) *AppError {
	return &AppError{Code: ErrInvalidSignature, Message: "invalid token signature", Err: err}
}

func Expired(err error) *AppError {
	return &AppError{Code: ErrExpired, Message: "token expired", Err: err}
}

func MalformedToken(err error) *AppError {
	return &AppError{Code: ErrMalformedToken, Message: "malformed token", Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: ErrInvalidCredentials, Message: "invalid credentials"}
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Status returns the HTTP status for any error; non-application errors are 500.
func Status(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
