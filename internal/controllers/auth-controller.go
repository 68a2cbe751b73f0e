package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	"medequip-system/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("login failed", zap.String("name", payload.Name), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "login successful", http.StatusOK)
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.Register(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("register failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "user registered", http.StatusCreated)
}

// Logout is a client-side token discard; the server just acknowledges.
func (c *AuthController) Logout(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, nil, "logged out", http.StatusOK)
}
