package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spytracker/internal/config"
	"spytracker/internal/risk"
)

// RiskHandler exposes the position sizing calculator.
type RiskHandler struct {
	Risk config.RiskConfig
}

func (h *RiskHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/risk/position-size", h.positionSize)
}

// @Summary Position size from account, risk percent, entry, and stop
// @Tags risk
// @Param account query number true "account size"
// @Param risk_pct query number false "risk percent of account"
// @Param entry query number true "entry price"
// @Param stop query number true "stop price"
// @Param t1 query number false "first target price"
// @Param t2 query number false "second target price"
// @Param t3 query number false "third target price"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/risk/position-size [get]
func (h *RiskHandler) positionSize(c *gin.Context) {
	in := risk.PositionSizeInput{
		Account: floatQuery(c, "account", 0),
		RiskPct: floatQuery(c, "risk_pct", h.Risk.DefaultRiskPct),
		Entry:   floatQuery(c, "entry", 0),
		Stop:    floatQuery(c, "stop", 0),
		Targets: []float64{
			floatQuery(c, "t1", 0),
			floatQuery(c, "t2", 0),
			floatQuery(c, "t3", 0),
		},
	}
	res, ok := risk.PositionSize(in, h.Risk.DailyMaxLossPct)
	if !ok {
		Error(c, http.StatusBadRequest, "account, risk percent, and a stop away from entry are required", nil)
		return
	}
	Ok(c, res, nil)
}
