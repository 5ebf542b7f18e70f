package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinnidiwakar/sliptrack/backend/internal/apierror"
	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// LogEvent handles POST /api/v1/events
func (h *EventHandler) LogEvent(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.LogEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	// Aggregate field-level problems so the client sees them all at once.
	var fieldErrors []apierror.FieldError
	if req.Timestamp < 0 {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "timestamp",
			Message: "must not be negative",
			Code:    "invalid_value",
		})
	}
	if req.Intensity < models.IntensityUnset || req.Intensity > models.IntensityNearMiss {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "intensity",
			Message: "must be between 0 and 3",
			Code:    "invalid_value",
		})
	}
	if len(fieldErrors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	event, err := h.eventService.LogEvent(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNegativeTimestamp) || errors.Is(err, service.ErrInvalidIntensity) {
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to log event", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvents handles GET /api/v1/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list events", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, events)
}
