package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradux-portal/internal/dto"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/api"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
	logger        *zap.Logger
}

func NewReviewController(reviewService services.ReviewServiceInterface, logger *zap.Logger) *ReviewController {
	return &ReviewController{reviewService: reviewService, logger: logger}
}

type reviewPageDTO struct {
	Review     interface{} `json:"review"`
	Descriptor interface{} `json:"descriptor"`
}

func (c *ReviewController) GetReview(ctx echo.Context) error {
	view, descriptor, err := c.reviewService.GetReview(
		ctx.Request().Context(),
		ctx.Param("id"),
		ctx.QueryParam("token"),
	)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Review fetched", reviewPageDTO{Review: view, Descriptor: descriptor})
}

func (c *ReviewController) SubmitReview(ctx echo.Context) error {
	var req dto.SubmitReviewDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	result, err := c.reviewService.SubmitReview(
		ctx.Request().Context(),
		ctx.Param("id"),
		ctx.QueryParam("token"),
		req,
	)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, result.Message, result)
}
