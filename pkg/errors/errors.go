package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("access denied")

	// Review link
	ErrReviewTokenInvalid = fmt.Errorf("review link is invalid or expired")

	// Order workflow
	ErrOrderNotSelected = fmt.Errorf("no order selected")
	ErrActionInFlight   = fmt.Errorf("another action for this order is still in progress")
	ErrActionNotAllowed = fmt.Errorf("action is not allowed in the current status")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries an HTTP status code, a user-facing message and the
// underlying error plus context for logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// statusByError maps sentinel errors to HTTP codes for responses built from
// bare errors.
var statusByError = map[error]int{
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrTokenExpired:       http.StatusUnauthorized,
	ErrEmptyAuthHeader:    http.StatusUnauthorized,
	ErrInvalidAuthHeader:  http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrTokenIsNotRefresh:  http.StatusUnauthorized,
	ErrTokenIsNotAccess:   http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrReviewTokenInvalid: http.StatusForbidden,
	ErrNotFound:           http.StatusNotFound,
	ErrOrderNotSelected:   http.StatusConflict,
	ErrActionInFlight:     http.StatusConflict,
	ErrActionNotAllowed:   http.StatusUnprocessableEntity,
	ErrBadRequest:         http.StatusBadRequest,
}

// StatusCode resolves the HTTP status for any error raised by the portal.
func StatusCode(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for sentinel, code := range statusByError {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}

// InvalidInputError is a client-side validation failure; the action never
// leaves the portal.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
