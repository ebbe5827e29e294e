package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

var codeStatus = map[string]int{
	"invalid_input":            http.StatusBadRequest,
	"invalid_request":          http.StatusBadRequest,
	"unauthorized":             http.StatusUnauthorized,
	"invalid_token":            http.StatusUnauthorized,
	"invalid_credentials":      http.StatusUnauthorized,
	"forbidden":                http.StatusForbidden,
	"not_found":                http.StatusNotFound,
	"user_not_found":           http.StatusNotFound,
	"email_exists":             http.StatusConflict,
	"handle_exists":            http.StatusConflict,
	"account_linking_disabled": http.StatusConflict,
	"payload_too_large":        http.StatusRequestEntityTooLarge,
	"oauth_exchange_failed":    http.StatusBadGateway,
	"auth_not_configured":      http.StatusServiceUnavailable,
	"inventory_error":          http.StatusServiceUnavailable,
}

// statusFor maps a domain error code onto an HTTP status. Unknown codes are
// treated as server failures.
func statusFor(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return &HTTPError{Status: statusFor(appErr.Code), Code: appErr.Code, Message: appErr.Message, Err: err}
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// fail records a domain error for the error middleware and stops the chain.
func fail(c *gin.Context, err error) {
	abortWithError(c, asHTTPError(err))
}

// errMessage returns the client facing part of err.
func errMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
