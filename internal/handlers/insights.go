package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinnidiwakar/sliptrack/backend/internal/apierror"
	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

// InsightsHandler handles insights-related HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights handles GET /api/v1/insights
// Too little data is not an error: the response reports data_sufficient false
// and the minimum sample size instead.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightsService.GetInsights(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get insights", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, insights)
}
