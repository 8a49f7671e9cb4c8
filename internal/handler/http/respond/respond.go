// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes environment-aware error normalization so internal details never
// leak to production clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync/atomic"

	"newsboard/internal/config"
	"newsboard/internal/domain/entity"
)

// statusFail marks client errors (4xx), statusError server errors (5xx).
const (
	statusFail  = "fail"
	statusError = "error"
)

// productionFallback is the only message non-operational errors produce in production.
const productionFallback = "something went very wrong"

// devMode selects the verbose error rendering. Off means production.
var devMode atomic.Bool

// SetMode configures error rendering from the application environment.
func SetMode(env string) {
	devMode.Store(env == config.EnvDevelopment)
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// AppError is an error that carries its HTTP rendering.
// Operational errors are expected business failures whose message is safe
// to show to any client; everything else is masked in production.
type AppError struct {
	Code        int
	Status      string
	Message     string
	Err         error
	Operational bool
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

func newOperational(code int, msg string) *AppError {
	status := statusFail
	if code >= 500 {
		status = statusError
	}
	return &AppError{Code: code, Status: status, Message: msg, Operational: true}
}

// BadRequest returns a 400 operational error.
func BadRequest(msg string) *AppError { return newOperational(http.StatusBadRequest, msg) }

// Unauthorized returns a 401 operational error.
func Unauthorized(msg string) *AppError { return newOperational(http.StatusUnauthorized, msg) }

// Forbidden returns a 403 operational error.
func Forbidden(msg string) *AppError { return newOperational(http.StatusForbidden, msg) }

// NotFound returns a 404 operational error.
func NotFound(msg string) *AppError { return newOperational(http.StatusNotFound, msg) }

// Conflict returns a 409 operational error.
func Conflict(msg string) *AppError { return newOperational(http.StatusConflict, msg) }

// Internal wraps an unexpected error as a non-operational 500.
func Internal(err error) *AppError {
	return &AppError{
		Code:        http.StatusInternalServerError,
		Status:      statusError,
		Message:     "internal server error",
		Err:         err,
		Operational: false,
	}
}

// errorBody is the wire shape of a normalized error.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// WriteError normalizes err and writes exactly one JSON error response.
// Validation violations become 400s listing every violated field; anything
// that is not an AppError is treated as an unexpected internal error.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := coerce(err)

	if !appErr.Operational {
		// 原因はログにのみ残す。機密情報はマスクする
		slog.Default().Error("unexpected error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", appErr.Code),
			slog.String("error", SanitizeError(appErr.Err)))
	}

	body := errorBody{Status: appErr.Status, Message: appErr.Message}

	if devMode.Load() {
		if appErr.Err != nil {
			body.Error = appErr.Err.Error()
		} else {
			body.Error = appErr.Message
		}
		body.Stack = string(debug.Stack())
	} else if !appErr.Operational {
		body.Message = productionFallback
	}

	JSON(w, appErr.Code, body)
}

func coerce(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var violations entity.Violations
	if errors.As(err, &violations) {
		e := BadRequest(violations.Error())
		e.Err = err
		return e
	}
	var violation *entity.ValidationError
	if errors.As(err, &violation) {
		e := BadRequest(violation.Error())
		e.Err = err
		return e
	}

	return Internal(err)
}
