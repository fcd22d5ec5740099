package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailNotFound         = errors.New("email not found")
	ErrInvalidResetToken     = errors.New("invalid reset token")
	ErrResetTokenExpired     = errors.New("reset token expired")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrNoFileProvided        = errors.New("no file provided")
	ErrInvalidExtension      = errors.New("invalid file extension")
	ErrNotFound              = errors.New("resource not found")
	ErrBadRequest            = errors.New("bad request")
	ErrInternal              = errors.New("internal server error")
)

// Persistence wraps a storage-layer failure. The underlying driver error
// text is kept and surfaced to the caller.
type Persistence struct {
	Err error
}

func (e *Persistence) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "persistence error"
}

func (e *Persistence) Unwrap() error {
	return e.Err
}

// NewPersistence wraps err as a persistence failure.
func NewPersistence(err error) error {
	if err == nil {
		return nil
	}
	return &Persistence{Err: err}
}

// IsPersistence reports whether err is a storage-layer failure.
func IsPersistence(err error) bool {
	var p *Persistence
	return errors.As(err, &p)
}

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmailNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotLoggedIn), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrNoFileProvided),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, ErrInvalidResetToken),
		errors.Is(err, ErrResetTokenExpired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
