// Package stats computes aggregate performance metrics from the trade log.
// Every function is pure: input slices are never mutated, no I/O happens,
// and arithmetic edge cases (empty input, zero denominators, absent P&L)
// degrade to zero values instead of NaN or Infinity.
package stats

import (
	"sort"

	"spytracker/internal/models"
)

// Summary is the fixed set of aggregate metrics shown on the dashboard
// and stats views.
type Summary struct {
	Total  int `json:"total"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	WinRate  float64 `json:"wr"`
	TotalPnL float64 `json:"totalPnl"`
	AvgWin   float64 `json:"avgWin"`
	AvgLoss  float64 `json:"avgLoss"`

	ProfitFactor float64 `json:"pf"`
	Expectancy   float64 `json:"exp"`
	Kelly        float64 `json:"kelly"`

	MaxDrawdown   float64 `json:"maxDrawdown"`
	MaxWinStreak  int     `json:"maxWinStreak"`
	MaxLossStreak int     `json:"maxLossStreak"`

	Compliance    float64 `json:"compliance"`
	WinRateRules  float64 `json:"wrComp"`
	WinRateBroken float64 `json:"wrBroken"`
	RulesCount    int     `json:"compCount"`
	BrokenCount   int     `json:"brokenCount"`
}

// Compute aggregates the full trade collection into a Summary. Trades with
// a nil PnL are excluded from sums and averages, but count as zero in the
// running drawdown sum. That asymmetry matches the historical behavior the
// journal has always shown and is kept on purpose.
func Compute(trades []models.Trade) Summary {
	var s Summary
	s.Total = len(trades)

	winPnLSum := 0.0
	winPnLCount := 0
	lossPnLSum := 0.0
	lossPnLCount := 0
	rulesWins := 0
	brokenWins := 0
	for _, t := range trades {
		switch t.Outcome {
		case models.OutcomeWin:
			s.Wins++
			if t.PnL != nil {
				winPnLSum += t.PnL.InexactFloat64()
				winPnLCount++
			}
		case models.OutcomeLoss:
			s.Losses++
			if t.PnL != nil {
				lossPnLSum += t.PnL.InexactFloat64()
				lossPnLCount++
			}
		}
		if t.PnL != nil {
			s.TotalPnL += t.PnL.InexactFloat64()
		}
		switch t.Rules {
		case models.RulesYes:
			s.RulesCount++
			if t.Outcome == models.OutcomeWin {
				rulesWins++
			}
		case models.RulesNo:
			s.BrokenCount++
			if t.Outcome == models.OutcomeWin {
				brokenWins++
			}
		}
	}

	if s.Total > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Total)
		s.Compliance = float64(s.RulesCount) / float64(s.Total)
	}
	if winPnLCount > 0 {
		s.AvgWin = winPnLSum / float64(winPnLCount)
	}
	if lossPnLCount > 0 {
		s.AvgLoss = -lossPnLSum / float64(lossPnLCount)
		if s.AvgLoss < 0 {
			// Manual override can put a positive pnl on a loss outcome;
			// the average magnitude must stay non-negative.
			s.AvgLoss = -s.AvgLoss
		}
	}
	if s.AvgLoss > 0 {
		lossDiv := s.Losses
		if lossDiv < 1 {
			lossDiv = 1
		}
		s.ProfitFactor = (s.AvgWin * float64(s.Wins)) / (s.AvgLoss * float64(lossDiv))
		if s.AvgWin > 0 {
			s.Kelly = s.WinRate - (1-s.WinRate)/(s.AvgWin/s.AvgLoss)
		}
	}
	s.Expectancy = s.AvgWin*s.WinRate - s.AvgLoss*(1-s.WinRate)

	ordered := sortedByDate(trades)
	s.MaxDrawdown = maxDrawdown(ordered)
	s.MaxWinStreak, s.MaxLossStreak = streaks(ordered)

	if s.RulesCount > 0 {
		s.WinRateRules = float64(rulesWins) / float64(s.RulesCount)
	}
	if s.BrokenCount > 0 {
		s.WinRateBroken = float64(brokenWins) / float64(s.BrokenCount)
	}
	return s
}

// KellyPercent converts a raw kelly fraction into the display percentage,
// clamped to [0, 25].
func KellyPercent(kelly float64) float64 {
	pct := kelly * 100
	if pct < 0 {
		return 0
	}
	if pct > 25 {
		return 25
	}
	return pct
}

// sortedByDate returns a copy ordered ascending by the date string.
// Dates are ISO formatted at the record-creation boundary, so plain
// lexicographic comparison is chronological; missing dates sort first.
func sortedByDate(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// maxDrawdown walks the date-ordered trades accumulating P&L (absent pnl
// counts as zero here), tracks the running peak, and reports the largest
// peak-to-current distance.
func maxDrawdown(ordered []models.Trade) float64 {
	run := 0.0
	peak := 0.0
	maxDD := 0.0
	for _, t := range ordered {
		if t.PnL != nil {
			run += t.PnL.InexactFloat64()
		}
		if run > peak {
			peak = run
		}
		if dd := peak - run; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// streaks reports the longest consecutive win run and loss run in date
// order. Any other outcome, including break-even and unset, resets both.
func streaks(ordered []models.Trade) (maxWin, maxLoss int) {
	curWin := 0
	curLoss := 0
	for _, t := range ordered {
		switch t.Outcome {
		case models.OutcomeWin:
			curWin++
			curLoss = 0
			if curWin > maxWin {
				maxWin = curWin
			}
		case models.OutcomeLoss:
			curLoss++
			curWin = 0
			if curLoss > maxLoss {
				maxLoss = curLoss
			}
		default:
			curWin = 0
			curLoss = 0
		}
	}
	return maxWin, maxLoss
}
