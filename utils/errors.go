package utils

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error taxonomy shared by services and controllers. Match with errors.Is.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrValidationFailed   = errors.New("validation failed")
	ErrProviderRejected   = errors.New("provider rejected")
	ErrNotFound           = errors.New("not found")
)

// CustomError carries a status code and a client-safe message
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Cause      error  `json:"-"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Cause
}

// NewCustomError builds an error carrying statusCode and a client-safe message.
// cause, when given, is what errors.Is and errors.As see through Unwrap.
func NewCustomError(statusCode int, message string, cause ...error) *CustomError {
	err := &CustomError{StatusCode: statusCode, Message: message}
	if len(cause) > 0 {
		err.Cause = cause[0]
	}
	return err
}

func Unauthenticated(message string) *CustomError {
	return NewCustomError(http.StatusUnauthorized, message, ErrUnauthenticated)
}

func ValidationFailed(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message, ErrValidationFailed)
}

func ProviderRejected(message string, cause error) *CustomError {
	return NewCustomError(http.StatusBadRequest, message, errors.Wrap(ErrProviderRejected, errorText(cause)))
}

func NotFound(message string) *CustomError {
	return NewCustomError(http.StatusNotFound, message, ErrNotFound)
}

// StorageUnavailable hides the driver error behind a retryable message.
func StorageUnavailable(cause error) *CustomError {
	if cause == nil {
		cause = ErrStorageUnavailable
	}
	return NewCustomError(http.StatusInternalServerError, "Storage unavailable, please retry", cause)
}

// Resolve maps any error onto the status and message sent to the client.
func Resolve(err error) (int, string) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode, customErr.Message
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrValidationFailed):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, ErrProviderRejected):
		return http.StatusBadRequest, "Request rejected by identity provider"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusInternalServerError, "Storage unavailable, please retry"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

func errorText(err error) string {
	if err == nil {
		return "rejected"
	}
	return err.Error()
}
