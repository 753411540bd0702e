package handler

import (
	"github.com/gin-gonic/gin"

	"spytracker/internal/config"
	"spytracker/internal/journal"
)

// CatalogHandler serves the fixed vocabularies the journal UI renders
// from: setups, emotions, day types, the checklists, and the setup
// reference sheets.
type CatalogHandler struct {
	Journal config.JournalConfig
}

func (h *CatalogHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/catalog")
	g.GET("", h.catalog)
	g.GET("/checklists", h.checklists)
	g.GET("/setups", h.setupSheets)
}

// @Summary Field value catalogs
// @Tags catalog
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) catalog(c *gin.Context) {
	setups := h.Journal.Setups
	if len(setups) == 0 {
		setups = journal.DefaultSetups
	}
	emotions := h.Journal.Emotions
	if len(emotions) == 0 {
		emotions = journal.DefaultEmotions
	}
	Ok(c, gin.H{
		"setups":    setups,
		"emotions":  emotions,
		"dayTypes":  journal.DayTypes,
		"timeSlots": h.Journal.TimeSlots,
	}, nil)
}

// @Summary Checklist definitions
// @Tags catalog
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/catalog/checklists [get]
func (h *CatalogHandler) checklists(c *gin.Context) {
	Ok(c, gin.H{
		"premarket": journal.PreMarketChecklist,
		"pretrade":  journal.PreTradeChecklist,
	}, nil)
}

// @Summary Setup reference sheets
// @Tags catalog
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/catalog/setups [get]
func (h *CatalogHandler) setupSheets(c *gin.Context) {
	Ok(c, journal.SetupReference, nil)
}
