package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spytracker/internal/service"
)

// PlannerHandler exposes the per-day records: game plan, checklists, and
// the day-type classification.
type PlannerHandler struct {
	Planner *service.PlannerService
}

func (h *PlannerHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1")
	g.GET("/gameplan/:date", h.getGamePlan)
	g.PUT("/gameplan/:date", h.putGamePlan)
	g.POST("/checklists/:date/toggle", h.toggleChecklist)
	g.POST("/checklists/:date/reset", h.resetChecklist)
	g.PUT("/daytype/:date", h.putDayType)
}

// @Summary Get the game plan for a date
// @Tags planner
// @Param date path string true "date YYYY-MM-DD"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/gameplan/{date} [get]
func (h *PlannerHandler) getGamePlan(c *gin.Context) {
	if h.Planner == nil {
		Error(c, http.StatusInternalServerError, "planner unavailable", nil)
		return
	}
	item, err := h.Planner.GetGamePlan(c.Request.Context(), c.Param("date"))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Update the game plan for a date
// @Tags planner
// @Param date path string true "date YYYY-MM-DD"
// @Param body body service.GamePlanInput true "fields to set"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/gameplan/{date} [put]
func (h *PlannerHandler) putGamePlan(c *gin.Context) {
	if h.Planner == nil {
		Error(c, http.StatusInternalServerError, "planner unavailable", nil)
		return
	}
	var in service.GamePlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Planner.UpsertGamePlan(c.Request.Context(), c.Param("date"), in)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

type toggleChecklistRequest struct {
	Group string `json:"group"`
	Index int    `json:"index"`
}

// @Summary Toggle a checklist item
// @Tags planner
// @Param date path string true "date YYYY-MM-DD"
// @Param body body handler.toggleChecklistRequest true "item to flip"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/checklists/{date}/toggle [post]
func (h *PlannerHandler) toggleChecklist(c *gin.Context) {
	if h.Planner == nil {
		Error(c, http.StatusInternalServerError, "planner unavailable", nil)
		return
	}
	var in toggleChecklistRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Planner.ToggleChecklistItem(c.Request.Context(), c.Param("date"), in.Group, in.Index)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Reset the checklists for a date
// @Tags planner
// @Param date path string true "date YYYY-MM-DD"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/checklists/{date}/reset [post]
func (h *PlannerHandler) resetChecklist(c *gin.Context) {
	if h.Planner == nil {
		Error(c, http.StatusInternalServerError, "planner unavailable", nil)
		return
	}
	item, err := h.Planner.ResetChecklist(c.Request.Context(), c.Param("date"))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

type putDayTypeRequest struct {
	Type string `json:"type"`
}

// @Summary Classify a trading day
// @Tags planner
// @Param date path string true "date YYYY-MM-DD"
// @Param body body handler.putDayTypeRequest true "trend, chop, or reversal"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/daytype/{date} [put]
func (h *PlannerHandler) putDayType(c *gin.Context) {
	if h.Planner == nil {
		Error(c, http.StatusInternalServerError, "planner unavailable", nil)
		return
	}
	var in putDayTypeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Planner.SetDayType(c.Request.Context(), c.Param("date"), in.Type)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}
