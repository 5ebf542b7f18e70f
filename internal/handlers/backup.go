package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chinnidiwakar/sliptrack/backend/internal/apierror"
	"github.com/chinnidiwakar/sliptrack/backend/internal/backup"
	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

// BackupHandler handles backup export and import HTTP requests
type BackupHandler struct {
	backupService service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles GET /api/v1/backup/export
// The response body is the backup document itself, served as a download.
func (h *BackupHandler) Export(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to export backup", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	data, err := backup.Marshal(doc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to encode backup", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	filename := fmt.Sprintf("sliptrack-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// Import handles POST /api/v1/backup/import
// Import is destructive-replace: the existing log is dropped and replaced by
// the document's events.
func (h *BackupHandler) Import(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	data, err := c.GetRawData()
	if err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Unable to read the uploaded file"))
		return
	}

	result, err := h.backupService.Import(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBackup) {
			apierror.WriteProblem(c, apierror.NewInvalidBackupError(requestID, err.Error()))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to import backup", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}
