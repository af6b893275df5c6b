package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrAdvertisementNotFound is returned when an advertisement is not found.
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	// ErrNameTaken is returned when registering or renaming to an existing name.
	ErrNameTaken = errors.New("user name already taken")
	// ErrInvalidCredentials is returned when name or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid name or password")
	// ErrInvalidToken is returned when a token is missing, unknown or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when an authenticated user is not permitted.
	ErrForbidden = errors.New("operation not permitted")
	// ErrInvalidPrice is returned when a price is negative.
	ErrInvalidPrice = errors.New("price must be non-negative")
	// ErrInvalidRole is returned when a role is outside the known set.
	ErrInvalidRole = errors.New("unknown role")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrAdvertisementNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ADVERTISEMENT_NOT_FOUND")
	case ErrNameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "NAME_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrInvalidPrice:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
