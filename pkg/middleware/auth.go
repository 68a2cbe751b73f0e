package middleware

import (
	"context"
	"strings"

	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/contextkeys"
	"medequip-system/pkg/service"
	"medequip-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtSvc, logger: logger}
}

// Auth validates the bearer token and stores user id and role on the
// request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin rejects callers whose token role is not admin. Must run
// after Auth.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := utils.GetUserRoleFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}
		if role != entities.RoleAdmin {
			m.logger.Warn("admin endpoint rejected", zap.String("role", role), zap.String("path", c.Path()))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}
