package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "personal-finance/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API error responses by code, route and status",
	},
	[]string{"code", "route", "status"},
)

// CustomHTTPErrorHandler renders every error that escapes a handler as an ErrorResponse.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := toErrorResponse(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request failed",
		slog.String("trace_id", traceID),
		slog.String("error_code", response.Error.Code),
		slog.Int("status", status),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	route := c.Path()
	if route == "" {
		route = "unmatched"
	}
	apiErrorsTotal.WithLabelValues(response.Error.Code, route, strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("failed to write error response", slog.String("trace_id", traceID), slog.Any("error", sendErr))
	}
}

func toErrorResponse(err error, traceID string) (*apperrors.ErrorResponse, int) {
	var (
		httpErr       *echo.HTTPError
		validationErr validator.ValidationErrors
		tooLarge      *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validationErr):
		fields := make(map[string]string, len(validationErr))
		for _, fe := range validationErr {
			fields[fe.Field()] = formatValidationError(fe)
		}
		return apperrors.NewValidationError(fields, traceID), http.StatusBadRequest

	case errors.As(err, &tooLarge):
		return apperrors.NewErrorResponse(apperrors.ValidationFileRejected, traceID,
			apperrors.WithMessage(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)),
		), http.StatusRequestEntityTooLarge

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok || message == "" {
			message = http.StatusText(httpErr.Code)
		}
		return apperrors.NewErrorResponse(mapHTTPStatusToErrorCode(httpErr.Code), traceID,
			apperrors.WithMessage(message),
		), httpErr.Code

	default:
		response, _ := apperrors.WrapSystemError(err, traceID)
		return response, response.GetHTTPStatus()
	}
}

// mapHTTPStatusToErrorCode picks an error code for errors raised by echo itself
func mapHTTPStatusToErrorCode(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
		return apperrors.ValidationGeneral
	case http.StatusUnauthorized:
		return apperrors.AuthMissingToken
	case http.StatusForbidden:
		return apperrors.AuthInsufficientPermission
	case http.StatusNotFound:
		return apperrors.ResourceNotFound
	case http.StatusRequestEntityTooLarge:
		return apperrors.ValidationFileRejected
	case http.StatusTooManyRequests:
		return apperrors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return apperrors.SystemInternalError
	case http.StatusServiceUnavailable:
		return apperrors.SystemServiceUnavailable
	default:
		return apperrors.SystemUnexpectedError
	}
}

// formatValidationError covers the tags used by the request DTOs
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "hexcolor", "hexcolor_short":
		return "must be a hex color such as #EF4444"
	case "direction":
		return "must be either income or expense"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
