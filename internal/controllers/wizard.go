package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/api"
	apperrors "tradux-portal/pkg/errors"
)

// maxUploadBytes mirrors the backend's 20MB document limit so oversized
// files are refused before being streamed upstream.
const maxUploadBytes = 20 * 1024 * 1024

// WizardController backs the consumer order wizard: upload documents, preview
// the price, request the binding quote, open the payment checkout.
type WizardController struct {
	repo           repositories.BackendRepositoryInterface
	pricingService services.PricingServiceInterface
	logger         *zap.Logger
}

func NewWizardController(repo repositories.BackendRepositoryInterface, pricingService services.PricingServiceInterface, logger *zap.Logger) *WizardController {
	return &WizardController{repo: repo, pricingService: pricingService, logger: logger}
}

func (c *WizardController) UploadDocument(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("A document file is required."))
	}
	if fileHeader.Size > maxUploadBytes {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("File too large (max 20MB)."))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Could not read uploaded file", err, nil))
	}
	defer src.Close()

	doc, err := c.repo.UploadDocument(ctx.Request().Context(), repositories.UploadFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      src,
	})
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Document uploaded", doc)
}

func (c *WizardController) Estimate(ctx echo.Context) error {
	var req dto.EstimateRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	estimate, err := c.pricingService.Estimate(ctx.Request().Context(), req)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Estimate calculated", estimate)
}

func (c *WizardController) CalculateQuote(ctx echo.Context) error {
	var req dto.QuoteRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	quote, err := c.repo.CalculateQuote(ctx.Request().Context(), req)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Quote created", quote)
}

func (c *WizardController) CreateCheckout(ctx echo.Context) error {
	var req dto.CheckoutRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	checkout, err := c.repo.CreateCheckout(ctx.Request().Context(), req)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Checkout session created", checkout)
}
