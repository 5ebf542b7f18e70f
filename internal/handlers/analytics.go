package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chinnidiwakar/sliptrack/backend/internal/apierror"
	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
	"github.com/chinnidiwakar/sliptrack/backend/internal/quotes"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary handles GET /api/v1/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get summary", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetStreaks handles GET /api/v1/streaks
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	stats, err := h.analyticsService.GetStreaks(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get streaks", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetCalendar handles GET /api/v1/calendar?year=&month=
// Both parameters default to the current local month.
func (h *AnalyticsHandler) GetCalendar(c *gin.Context) {
	requestID := apierror.GetRequestID(c)
	now := time.Now()

	year := now.Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "year", Message: "must be an integer", Code: "invalid_format"},
			}))
			return
		}
		year = parsed
	}

	month := now.Month()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "month", Message: "must be an integer between 1 and 12", Code: "invalid_format"},
			}))
			return
		}
		month = time.Month(parsed)
	}

	days, err := h.analyticsService.GetCalendar(c.Request.Context(), year, month)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build calendar", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  days,
	})
}

// GetHistory handles GET /api/v1/history
func (h *AnalyticsHandler) GetHistory(c *gin.Context) {
	history, err := h.analyticsService.GetHistory(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get history", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetWeeklyReport handles GET /api/v1/reports/weekly
func (h *AnalyticsHandler) GetWeeklyReport(c *gin.Context) {
	report, err := h.analyticsService.GetWeeklyReport(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get weekly report", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetQuote handles GET /api/v1/quote
func (h *AnalyticsHandler) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": quotes.QuoteOfTheDay()})
}
