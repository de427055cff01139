package handler

import (
	"strconv"
	"time"

	"github.com/akfoods/pos-api/internal/application/service"
	"github.com/akfoods/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// dateQueryOrToday reads a YYYY-MM-DD query parameter, defaulting to today.
func dateQueryOrToday(c *gin.Context, name string) time.Time {
	if d := parseDateQuery(c, name); d != nil {
		return *d
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DaySummary handles the single-day summary report
// @Summary Day summary
// @Tags reports
// @Router /reports/day [get]
func (h *ReportHandler) DaySummary(c *gin.Context) {
	day := dateQueryOrToday(c, "date")

	summary, err := h.reportService.DaySummary(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day summary retrieved successfully", summary)
}

// RangeSummary handles the date-range report
// @Summary Range summary
// @Tags reports
// @Router /reports/range [get]
func (h *ReportHandler) RangeSummary(c *gin.Context) {
	start := dateQueryOrToday(c, "start_date")
	end := dateQueryOrToday(c, "end_date").AddDate(0, 0, 1) // inclusive end date

	summary, err := h.reportService.GetRangeSummary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Range summary retrieved successfully", summary)
}

// HourlySales handles the per-hour sales breakdown of one day
// @Summary Hourly sales
// @Tags reports
// @Router /reports/hourly [get]
func (h *ReportHandler) HourlySales(c *gin.Context) {
	day := dateQueryOrToday(c, "date")

	results, err := h.reportService.HourlySales(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Hourly sales retrieved successfully", results)
}

// TopItems handles the best-sellers report
// @Summary Top items
// @Tags reports
// @Router /reports/top-items [get]
func (h *ReportHandler) TopItems(c *gin.Context) {
	start := dateQueryOrToday(c, "start_date")
	end := dateQueryOrToday(c, "end_date").AddDate(0, 0, 1)

	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.reportService.TopItems(c.Request.Context(), start, end, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top items retrieved successfully", results)
}

// SendDailySummary handles sending the end-of-day summary email
// @Summary Send daily summary email
// @Tags reports
// @Router /reports/day/email [post]
func (h *ReportHandler) SendDailySummary(c *gin.Context) {
	day := dateQueryOrToday(c, "date")

	if err := h.reportService.SendDailySummaryEmail(c.Request.Context(), day); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary email sent", nil)
}
