package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// ReportHandler handles reporting and export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GSTSummary handles GET /api/v1/reports/gst-summary
func (h *ReportHandler) GSTSummary(c *gin.Context) {
	from, to, ok := reportPeriod(c)
	if !ok {
		return
	}

	rows, err := h.reportService.GSTSummary(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"from": from.Format(time.DateOnly),
		"to":   to.Format(time.DateOnly),
		"rows": rows,
	})
}

// GSTSummaryXLSX handles GET /api/v1/reports/gst-summary.xlsx
func (h *ReportHandler) GSTSummaryXLSX(c *gin.Context) {
	from, to, ok := reportPeriod(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("gst-summary-%s-%s.xlsx", from.Format(time.DateOnly), to.Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.reportService.GSTSummaryXLSX(c.Request.Context(), c.Writer, from, to); err != nil {
		HandleError(c, err)
	}
}

// RegisterCSV handles GET /api/v1/reports/register.csv
func (h *ReportHandler) RegisterCSV(c *gin.Context) {
	filter, ok := documentFilter(c)
	if !ok {
		return
	}
	// Exports are unbounded; pagination applies to the JSON listing only.
	filter.Offset, filter.Limit = 0, 0

	c.Header("Content-Disposition", `attachment; filename="register.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := h.reportService.RegisterCSV(c.Request.Context(), c.Writer, filter); err != nil {
		HandleError(c, err)
	}
}

// RegisterXLSX handles GET /api/v1/reports/register.xlsx
func (h *ReportHandler) RegisterXLSX(c *gin.Context) {
	filter, ok := documentFilter(c)
	if !ok {
		return
	}
	filter.Offset, filter.Limit = 0, 0

	c.Header("Content-Disposition", `attachment; filename="register.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.reportService.RegisterXLSX(c.Request.Context(), c.Writer, filter); err != nil {
		HandleError(c, err)
	}
}

// reportPeriod parses the mandatory from/to query params.
func reportPeriod(c *gin.Context) (from, to time.Time, ok bool) {
	var err error
	from, err = time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from must be YYYY-MM-DD")
		return from, to, false
	}
	to, err = time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to must be YYYY-MM-DD")
		return from, to, false
	}
	if to.Before(from) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to must not precede from")
		return from, to, false
	}
	return from, to, true
}
