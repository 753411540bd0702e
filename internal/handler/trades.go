package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spytracker/internal/repository"
	"spytracker/internal/service"
)

// TradesHandler exposes the trade log CRUD and the whole-journal state
// snapshot the UI boots from.
type TradesHandler struct {
	Repo    repository.Repository
	Journal *service.JournalService
	UserID  string
}

var tradeOrderColumns = map[string]string{
	"date":       "date",
	"created_at": "created_at",
	"pnl":        "pnl",
	"setup":      "setup",
	"outcome":    "outcome",
}

func (h *TradesHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/state", h.state)
	g := r.Group("/api/v1/journal/trades")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.save)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

// @Summary Full journal snapshot
// @Tags journal
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/state [get]
func (h *TradesHandler) state(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "journal unavailable", nil)
		return
	}
	snap, err := h.Journal.LoadAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, snap, nil)
}

// @Summary List trades
// @Tags journal
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Param setup query string false "filter by setup"
// @Param day_type query string false "filter by day type"
// @Param outcome query string false "filter by outcome"
// @Param rules query string false "filter by rules compliance"
// @Param date query string false "exact date YYYY-MM-DD"
// @Param from query string false "start date inclusive"
// @Param to query string false "end date inclusive"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/journal/trades [get]
func (h *TradesHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListTradesParams{
		UserID:  h.UserID,
		Limit:   limit,
		Offset:  offset,
		Setup:   strQueryPtr(c, "setup"),
		DayType: strQueryPtr(c, "day_type"),
		Outcome: strQueryPtr(c, "outcome"),
		Rules:   strQueryPtr(c, "rules"),
		Date:    strQueryPtr(c, "date"),
		From:    strQueryPtr(c, "from"),
		To:      strQueryPtr(c, "to"),
		OrderBy: parseOrder(c.Query("order_by"), tradeOrderColumns),
		Asc:     boolPtr(c.Query("order") == "asc"),
	}
	items, err := h.Repo.ListTrades(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountTrades(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Get one trade
// @Tags journal
// @Param id path string true "trade id"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/journal/trades/{id} [get]
func (h *TradesHandler) get(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "journal unavailable", nil)
		return
	}
	item, err := h.Journal.GetTrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Record a trade
// @Tags journal
// @Param body body service.TradeInput true "trade fields"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/journal/trades [post]
func (h *TradesHandler) save(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "journal unavailable", nil)
		return
	}
	var in service.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Journal.SaveTrade(c.Request.Context(), in)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Update a trade
// @Tags journal
// @Param id path string true "trade id"
// @Param body body service.TradeInput true "trade fields"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/journal/trades/{id} [put]
func (h *TradesHandler) update(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "journal unavailable", nil)
		return
	}
	var in service.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	in.ID = c.Param("id")
	if _, err := h.Journal.GetTrade(c.Request.Context(), in.ID); err != nil {
		serviceError(c, err)
		return
	}
	item, err := h.Journal.SaveTrade(c.Request.Context(), in)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a trade
// @Tags journal
// @Param id path string true "trade id"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/journal/trades/{id} [delete]
func (h *TradesHandler) remove(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "journal unavailable", nil)
		return
	}
	if err := h.Journal.DeleteTrade(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}
