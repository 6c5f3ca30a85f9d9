package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tradux-portal/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List  []T    `json:"list"`
	Total uint64 `json:"total"`
}

// SuccessOne returns a single object.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    ListBody[T]{List: list, Total: total},
	})
}

func ErrorResponse(c echo.Context, err error) error {
	code := apperrors.StatusCode(err)
	msg := err.Error()

	// For HttpError expose only the user message, never code internals.
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		msg = httpErr.Message
	}
	// Echo raises its own error type from Bind (malformed JSON, bad content
	// type); keep its code instead of falling through to 500.
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		code = echoErr.Code
		msg = fmt.Sprintf("%v", echoErr.Message)
	}
	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		code = http.StatusBadRequest
		msg = inputErr.Message
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
