// Package risk implements the position sizing calculator.
package risk

import "math"

type PositionSizeInput struct {
	Account float64
	RiskPct float64
	Entry   float64
	Stop    float64
	Targets []float64
}

// TargetResult is the projected outcome at one price target.
type TargetResult struct {
	Price  float64 `json:"price"`
	RR     float64 `json:"rr"`
	Profit float64 `json:"profit"`
}

type PositionSizeResult struct {
	RiskAmount   float64        `json:"risk"`
	StopDistance float64        `json:"dist"`
	Shares       int64          `json:"shares"`
	PositionCost float64        `json:"pos"`
	DailyMaxLoss float64        `json:"dailyMax"`
	Targets      []TargetResult `json:"targets,omitempty"`
}

// PositionSize sizes a trade so the loss at the stop equals the chosen
// percentage of the account, and projects profit and R multiple at each
// given target. Returns ok=false when the inputs cannot produce a size
// (non-positive account or risk, or stop at the entry).
func PositionSize(in PositionSizeInput, dailyMaxLossPct float64) (PositionSizeResult, bool) {
	if in.Account <= 0 || in.RiskPct <= 0 {
		return PositionSizeResult{}, false
	}
	dist := math.Abs(in.Entry - in.Stop)
	if dist == 0 {
		return PositionSizeResult{}, false
	}

	riskAmount := in.Account * in.RiskPct / 100
	shares := int64(math.Floor(riskAmount / dist))

	res := PositionSizeResult{
		RiskAmount:   riskAmount,
		StopDistance: dist,
		Shares:       shares,
		PositionCost: float64(shares) * in.Entry,
		DailyMaxLoss: in.Account * dailyMaxLossPct / 100,
	}

	for _, tgt := range in.Targets {
		if tgt == 0 {
			continue
		}
		reward := math.Abs(tgt - in.Entry)
		res.Targets = append(res.Targets, TargetResult{
			Price:  tgt,
			RR:     reward / dist,
			Profit: float64(shares) * reward,
		})
	}
	return res, true
}
