package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradux-portal/internal/dto"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/api"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.Login(ctx.Request().Context(), req)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Logged in", tokens)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	var req dto.RefreshDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.Refresh(ctx.Request().Context(), req.RefreshToken)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Tokens refreshed", tokens)
}
