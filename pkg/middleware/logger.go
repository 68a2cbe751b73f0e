package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs method, path, status and duration for API routes.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			if strings.HasPrefix(c.Request().URL.Path, "/api") {
				logger.Info("request",
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().URL.Path),
					zap.Int("status", c.Response().Status),
					zap.Duration("duration", time.Since(start)),
				)
			}
			return err
		}
	}
}
