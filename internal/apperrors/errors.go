package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials. Local credential
// failures always collapse into this single error so callers cannot tell an
// unknown username apart from a wrong password.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream indicates a failure in an external dependency (news API, OAuth provider).
var ErrUpstream = errors.New("upstream service error")

// AppError carries an HTTP status code alongside a client-safe message.
// It marshals to the standard {"error": "..."} response body.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: msg}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: msg}
}

func NewBadGatewayError(msg string) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: msg}
}

func NewInternalServerError(msg string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg}
}

// FromError maps service-layer sentinel errors to an AppError with the
// matching HTTP status. Unrecognized errors become a generic 500 so internal
// detail never leaks to clients.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrValidation):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError("Not authenticated")
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError(err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewConflictError(err.Error())
	case errors.Is(err, ErrUpstream):
		return NewBadGatewayError("Upstream service error")
	default:
		return NewInternalServerError("Internal server error")
	}
}
