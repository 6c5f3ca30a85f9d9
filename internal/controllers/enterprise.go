package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/api"
)

// EnterpriseController backs the enterprise landing page: ROI calculator and
// lead intake.
type EnterpriseController struct {
	repo           repositories.BackendRepositoryInterface
	pricingService services.PricingServiceInterface
	logger         *zap.Logger
}

func NewEnterpriseController(repo repositories.BackendRepositoryInterface, pricingService services.PricingServiceInterface, logger *zap.Logger) *EnterpriseController {
	return &EnterpriseController{repo: repo, pricingService: pricingService, logger: logger}
}

func (c *EnterpriseController) CalculateROI(ctx echo.Context) error {
	var req dto.ROIRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	result, err := c.pricingService.ROI(ctx.Request().Context(), req)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "ROI calculated", result)
}

func (c *EnterpriseController) SubmitLead(ctx echo.Context) error {
	var req dto.LeadDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	reference, err := c.repo.SubmitLead(ctx.Request().Context(), req)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	c.logger.Info("enterprise lead submitted", zap.String("company", req.Company), zap.String("reference", reference))
	return api.SuccessOne(ctx, http.StatusOK, "Thank you! Our team will reach out shortly.", dto.LeadResultDTO{
		Reference: reference,
		Message:   "Thank you! Our team will reach out shortly.",
	})
}
