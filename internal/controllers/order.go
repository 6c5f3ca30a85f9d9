package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/dto"
	"tradux-portal/internal/repositories"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/api"
	apperrors "tradux-portal/pkg/errors"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	watcher      *services.OrderWatcher
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, watcher *services.OrderWatcher, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, watcher: watcher, logger: logger}
}

func (c *OrderController) ListOrders(ctx echo.Context) error {
	status := ctx.QueryParam("status")
	limit := queryInt(ctx, "limit", 50)
	skip := queryInt(ctx, "skip", 0)

	items, total, err := c.orderService.ListOrders(ctx.Request().Context(), status, limit, skip)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "Orders fetched", items, total)
}

func (c *OrderController) GetOrder(ctx echo.Context) error {
	detail, err := c.orderService.GetOrderDetail(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Order fetched", detail)
}

// DispatchAction executes one operator action against the order. Client
// review actions are only accepted on the review routes.
func (c *OrderController) DispatchAction(ctx echo.Context) error {
	var req dto.OrderActionDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if req.Action == domain.ActionClientApprove || req.Action == domain.ActionRequestCorrection {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusUnprocessableEntity,
			"Client review actions must go through the review link",
			apperrors.ErrActionNotAllowed,
			nil,
		))
	}

	detail, err := c.orderService.DispatchAction(ctx.Request().Context(), ctx.Param("id"), req.Action, services.ActionParams{
		Instructions: req.Instructions,
		Notes:        req.Notes,
	})
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Action \""+string(req.Action)+"\" applied", detail)
}

// UploadPMTranslation accepts the external (human) translation file and
// dispatches the upload action, which bypasses the AI phases.
func (c *OrderController) UploadPMTranslation(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("A translation file is required."))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Could not read uploaded file", err, nil))
	}
	defer src.Close()

	detail, err := c.orderService.DispatchAction(ctx.Request().Context(), ctx.Param("id"), domain.ActionUploadPMTranslation, services.ActionParams{
		File: &repositories.UploadFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      src,
		},
	})
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Translation uploaded", detail)
}

func (c *OrderController) UpdateTranslation(ctx echo.Context) error {
	var req dto.UpdateTranslationDTO
	if err := ctx.Bind(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	detail, err := c.orderService.UpdateTranslation(ctx.Request().Context(), ctx.Param("id"), req.ProofreadText)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Translation updated", detail)
}

func (c *OrderController) GetDocumentTexts(ctx echo.Context) error {
	texts, err := c.orderService.GetDocumentTexts(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Document texts fetched", texts)
}

// DownloadPMTranslation proxies the PM-uploaded file from the backend.
func (c *OrderController) DownloadPMTranslation(ctx echo.Context) error {
	file, err := c.orderService.DownloadPMTranslation(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	ctx.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	return ctx.Blob(http.StatusOK, file.ContentType, file.Content)
}

func (c *OrderController) GetStats(ctx echo.Context) error {
	stats, err := c.orderService.GetStats(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Stats fetched", stats)
}

// WatchOrder streams order updates over SSE while the order is in a transient
// status. The stream ends with a final event once the status settles; closing
// the connection cancels the poll loop.
func (c *OrderController) WatchOrder(ctx echo.Context) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	reqCtx := ctx.Request().Context()
	updates := c.watcher.Watch(reqCtx, ctx.Param("id"))
	for update := range updates {
		payload, err := json.Marshal(update)
		if err != nil {
			c.logger.Error("watch: marshal failed", zap.Error(err))
			continue
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
			return nil
		}
		res.Flush()
	}
	return nil
}

func queryInt(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
