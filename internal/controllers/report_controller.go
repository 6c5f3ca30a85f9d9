package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"tradux-portal/internal/domain"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/api"
)

type ReportController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewReportController(orderService services.OrderServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{orderService: orderService, logger: logger}
}

var reportHeaders = []interface{}{
	"Order #", "Customer", "Email", "Tier", "Certification",
	"From", "To", "Document Type", "Pages", "Total ($)",
	"Payment", "Status", "PM Approved", "Client Approved", "Created",
}

// ExportOrders renders the current order list (optionally filtered by
// status) as an XLSX workbook for operators.
func (c *ReportController) ExportOrders(ctx echo.Context) error {
	status := ctx.QueryParam("status")
	limit := queryInt(ctx, "limit", 500)

	orders, _, err := c.orderService.ListOrdersRaw(ctx.Request().Context(), status, limit, 0)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return c.respondWithXLSX(ctx, orders)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, orders []domain.Order) error {
	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "O1", style)

	for i, order := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderToRow(order)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "F", "H", 18)
	f.SetColWidth(sheet, "L", "L", 20)
	f.SetColWidth(sheet, "O", "O", 22)

	fileName := fmt.Sprintf("tradux_orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func orderToRow(o domain.Order) []interface{} {
	return []interface{}{
		o.OrderNumber,
		o.CustomerName,
		o.CustomerEmail,
		o.ServiceTier,
		o.CertType,
		o.SourceLanguage,
		o.TargetLanguage,
		o.DocumentType,
		o.PageCount,
		o.TotalPrice,
		o.PaymentStatus,
		o.Descriptor().Label,
		o.PMApproved,
		o.ClientApproved,
		o.CreatedAt,
	}
}
