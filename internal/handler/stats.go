package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spytracker/internal/config"
	"spytracker/internal/models"
	"spytracker/internal/repository"
	"spytracker/internal/service"
	"spytracker/internal/stats"
)

// StatsHandler computes the aggregate views. Every endpoint loads the
// full trade log and runs the pure engine over it; only the daily history
// listing reads the persisted cache.
type StatsHandler struct {
	Repo    repository.Repository
	Daily   *service.DailyStatsService
	Journal config.JournalConfig
	UserID  string
}

func (h *StatsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/stats")
	g.GET("/summary", h.summary)
	g.GET("/breakdown", h.breakdown)
	g.GET("/time", h.byTime)
	g.GET("/daily", h.daily)
	g.GET("/daily/history", h.dailyHistory)
	g.POST("/daily/rebuild", h.dailyRebuild)
	g.GET("/equity", h.equity)
	g.GET("/extremes", h.extremes)
}

func (h *StatsHandler) loadTrades(c *gin.Context) ([]models.Trade, bool) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return nil, false
	}
	trades, err := h.Repo.ListAllTrades(c.Request.Context(), h.UserID)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return nil, false
	}
	return trades, true
}

// @Summary Aggregate performance metrics
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/summary [get]
func (h *StatsHandler) summary(c *gin.Context) {
	trades, ok := h.loadTrades(c)
	if !ok {
		return
	}
	s := stats.Compute(trades)
	Ok(c, s, map[string]any{"kellyDisplay": stats.KellyPercent(s.Kelly)})
}

// @Summary Grouped breakdown over a categorical field
// @Tags stats
// @Param field query string false "setup, day_type, direction, or emotion"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/breakdown [get]
func (h *StatsHandler) breakdown(c *gin.Context) {
	trades, ok := h.loadTrades(c)
	if !ok {
		return
	}
	field := c.DefaultQuery("field", stats.FieldSetup)
	catalog, ok := h.catalogFor(field)
	if !ok {
		Error(c, http.StatusBadRequest, "unknown field", nil)
		return
	}
	Ok(c, stats.ByField(trades, field, catalog), map[string]any{"field": field})
}

// @Summary Breakdown by time of day
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/time [get]
func (h *StatsHandler) byTime(c *gin.Context) {
	trades, ok := h.loadTrades(c)
	if !ok {
		return
	}
	slots := make([]stats.TimeSlot, 0, len(h.Journal.TimeSlots))
	for _, s := range h.Journal.TimeSlots {
		slots = append(slots, stats.TimeSlot{Label: s.Label, Min: s.Min, Max: s.Max})
	}
	Ok(c, stats.ByTimeSlot(trades, slots), nil)
}

// @Summary Per-day aggregates, newest first
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/daily [get]
func (h *StatsHandler) daily(c *gin.Context) {
	trades, ok := h.loadTrades(c)
	if !ok {
		return
	}
	Ok(c, stats.ByDay(trades), nil)
}

// @Summary Persisted daily aggregates
// @Tags stats
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Param since query string false "start date inclusive"
// @Param until query string false "end date inclusive"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/daily/history [get]
func (h *StatsHandler) dailyHistory(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	items, err := h.Repo.ListDailyStats(c.Request.Context(), repository.ListDailyStatsParams{
		UserID: h.UserID,
		Limit:  limit,
		Offset: offset,
		Since:  strQueryPtr(c, "since"),
		Until:  strQueryPtr(c, "until"),
	})
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Rebuild the persisted daily aggregates now
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/daily/rebuild [post]
func (h *StatsHandler) dailyRebuild(c *gin.Context) {
	if h.Daily == nil {
		Error(c, http.StatusInternalServerError, "daily stats unavailable", nil)
		return
	}
	if err := h.Daily.RunOnce(c.Request.Context()); err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"rebuilt": true}, nil)
}

// @Summary Cumulative P&L curve
// @Tags stats
// @Param limit query int false "number of most recent trades"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/equity [get]
func (h *StatsHandler) equity(c *gin.Context) {
	trades, ok := h.loadTrades(c)
	if !ok {
		return
	}
	limit := intQuery(c, "limit", h.Journal.EquityPoints)
	Ok(c, stats.EquityCurve(trades, limit), nil)
}

// @Summary Best and worst trades by P&L
// @Tags stats
// @Param n query int false "trades per side"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/extremes [get]
func (h *StatsHandler) extremes(c *gin.Context) {
	trades, ok := h.loadTrades(c)
	if !ok {
		return
	}
	n := intQuery(c, "n", h.Journal.ExtremeCount)
	best, worst := stats.Extremes(trades, n)
	Ok(c, gin.H{"best": best, "worst": worst}, nil)
}

func (h *StatsHandler) catalogFor(field string) ([]string, bool) {
	switch field {
	case stats.FieldSetup:
		return h.Journal.Setups, true
	case stats.FieldDayType:
		return []string{"Trend", "Chop", "Reversal"}, true
	case stats.FieldDirection:
		return []string{"LONG", "SHORT"}, true
	case stats.FieldEmotion:
		return h.Journal.Emotions, true
	default:
		return nil, false
	}
}
