package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "medequip-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

// sentinel errors that map directly to an HTTP status
var sentinelStatus = map[error]int{
	apperrors.ErrNotFound:            http.StatusNotFound,
	apperrors.ErrInvalidCredentials:  http.StatusUnauthorized,
	apperrors.ErrUnauthorized:        http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:   http.StatusUnauthorized,
	apperrors.ErrInvalidToken:        http.StatusUnauthorized,
	apperrors.ErrTokenExpired:        http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:    http.StatusUnauthorized,
	apperrors.ErrForbidden:           http.StatusForbidden,
	apperrors.ErrTooManyAttempts:     http.StatusTooManyRequests,
	apperrors.ErrBadRequest:          http.StatusBadRequest,
	apperrors.ErrInvalidTransition:   http.StatusBadRequest,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		resp := map[string]interface{}{"status": false, "message": httpErr.Message}
		if httpErr.Details != nil {
			resp["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, resp)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "validation failed: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, code := range sentinelStatus {
		if errors.Is(err, sentinel) {
			return c.JSON(code, map[string]interface{}{"status": false, "message": sentinel.Error()})
		}
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "internal server error",
	})
}
