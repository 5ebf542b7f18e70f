package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinnidiwakar/sliptrack/backend/internal/apierror"
	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

// MilestoneHandler handles milestone check HTTP requests
type MilestoneHandler struct {
	milestoneService service.MilestoneService
}

// NewMilestoneHandler creates a new milestone handler
func NewMilestoneHandler(milestoneService service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// GetMilestone handles GET /api/v1/milestone
// The milestone field is null when the current streak is not on a celebrated
// day count.
func (h *MilestoneHandler) GetMilestone(c *gin.Context) {
	milestone, err := h.milestoneService.CheckMilestone(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to check milestone", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestone": milestone})
}
