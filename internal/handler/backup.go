package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spytracker/internal/service"
)

// BackupHandler exposes the whole-journal export and restore endpoints.
type BackupHandler struct {
	Backup *service.BackupService
}

func (h *BackupHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1")
	g.GET("/export/backup", h.exportBackup)
	g.GET("/export/csv", h.exportCSV)
	g.POST("/import", h.importBackup)
}

// @Summary Export the full journal as JSON
// @Tags backup
// @Success 200 {object} service.Backup
// @Router /api/v1/export/backup [get]
func (h *BackupHandler) exportBackup(c *gin.Context) {
	if h.Backup == nil {
		Error(c, http.StatusInternalServerError, "backup unavailable", nil)
		return
	}
	doc, err := h.Backup.Export(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	name := "spy-tracker-backup-" + time.Now().UTC().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.JSON(http.StatusOK, doc)
}

// @Summary Export the trade log as CSV
// @Tags backup
// @Produce text/csv
// @Success 200 {string} string
// @Router /api/v1/export/csv [get]
func (h *BackupHandler) exportCSV(c *gin.Context) {
	if h.Backup == nil {
		Error(c, http.StatusInternalServerError, "backup unavailable", nil)
		return
	}
	raw, err := h.Backup.ExportCSV(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	name := "spy-trades-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv", raw)
}

// @Summary Restore a journal backup
// @Tags backup
// @Accept json
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/import [post]
func (h *BackupHandler) importBackup(c *gin.Context) {
	if h.Backup == nil {
		Error(c, http.StatusInternalServerError, "backup unavailable", nil)
		return
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	res, err := h.Backup.Import(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			Error(c, http.StatusBadRequest, "invalid backup file", nil)
			return
		}
		serviceError(c, err)
		return
	}
	Ok(c, res, nil)
}
