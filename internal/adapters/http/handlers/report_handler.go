package handlers

import (
	"fmt"
	"strconv"

	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/core/services"
	"retiree-registry/internal/pkg/dateutil"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the PDF listings
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListReports lists the available report kinds
// @Summary List reports
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"reports": services.ReportKinds(),
	})
}

// GenerateReport renders a report as PDF
// @Summary Generate report
// @Description Kinds: active-members, retirees, survivors, deceased, birthdays (needs date=DD/MM)
// @Tags Reports
// @Produce application/pdf
// @Security BearerAuth
// @Param kind path string true "Report kind"
// @Param date query string false "Day and month for birthdays, DD/MM"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{kind} [get]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	kind, err := services.ParseReportKind(c.Params("kind"))
	if err != nil {
		return writeServiceError(c, err)
	}

	req := services.ReportRequest{Kind: kind}
	if kind == services.ReportBirthdays {
		day, month, err := dateutil.ParseDayMonth(c.Query("date"))
		if err != nil {
			return writeServiceError(c, domain.ErrInvalidBirthday)
		}
		req.Day, req.Month = day, month
	}

	report, err := h.reportService.Generate(c.Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", report.Filename))
	c.Set("X-Report-ID", report.ID)
	c.Set("X-Report-Pages", strconv.Itoa(report.Pages))
	return c.Send(report.PDF)
}
