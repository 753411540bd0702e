package stats

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"spytracker/internal/models"
)

func tr(date, outcome string, pnl float64) models.Trade {
	d := decimal.NewFromFloat(pnl)
	return models.Trade{Date: date, Outcome: outcome, PnL: &d}
}

func trNoPnL(date, outcome string) models.Trade {
	return models.Trade{Date: date, Outcome: outcome}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	if s.Total != 0 || s.Wins != 0 || s.Losses != 0 {
		t.Fatalf("counts=%d/%d/%d want zeros", s.Total, s.Wins, s.Losses)
	}
	for name, v := range map[string]float64{
		"wr":          s.WinRate,
		"totalPnl":    s.TotalPnL,
		"avgWin":      s.AvgWin,
		"avgLoss":     s.AvgLoss,
		"pf":          s.ProfitFactor,
		"exp":         s.Expectancy,
		"kelly":       s.Kelly,
		"maxDrawdown": s.MaxDrawdown,
	} {
		if v != 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s=%v want 0", name, v)
		}
	}
}

func TestCompute_Basic(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		tr("2026-01-06", models.OutcomeLoss, -50),
		tr("2026-01-07", models.OutcomeWin, 200),
		tr("2026-01-08", models.OutcomeLoss, -150),
	}
	s := Compute(trades)
	if s.Total != 4 || s.Wins != 2 || s.Losses != 2 {
		t.Fatalf("counts=%d/%d/%d want 4/2/2", s.Total, s.Wins, s.Losses)
	}
	if s.WinRate != 0.5 {
		t.Fatalf("wr=%v want 0.5", s.WinRate)
	}
	if s.TotalPnL != 100 {
		t.Fatalf("totalPnl=%v want 100", s.TotalPnL)
	}
	if s.AvgWin != 150 {
		t.Fatalf("avgWin=%v want 150", s.AvgWin)
	}
	if s.AvgLoss != 100 {
		t.Fatalf("avgLoss=%v want 100", s.AvgLoss)
	}
	// pf = (150*2)/(100*2)
	if s.ProfitFactor != 1.5 {
		t.Fatalf("pf=%v want 1.5", s.ProfitFactor)
	}
	// exp = 150*0.5 - 100*0.5
	if s.Expectancy != 25 {
		t.Fatalf("exp=%v want 25", s.Expectancy)
	}
}

func TestCompute_AllWinsFinite(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		tr("2026-01-06", models.OutcomeWin, 50),
	}
	s := Compute(trades)
	if math.IsNaN(s.ProfitFactor) || math.IsInf(s.ProfitFactor, 0) {
		t.Fatalf("pf=%v want finite", s.ProfitFactor)
	}
	if s.ProfitFactor != 0 {
		t.Fatalf("pf=%v want 0 with no losses", s.ProfitFactor)
	}
	if math.IsNaN(s.Kelly) || math.IsInf(s.Kelly, 0) {
		t.Fatalf("kelly=%v want finite", s.Kelly)
	}
}

func TestCompute_AllLossesFinite(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeLoss, -100),
		tr("2026-01-06", models.OutcomeLoss, -50),
	}
	s := Compute(trades)
	if s.ProfitFactor != 0 {
		t.Fatalf("pf=%v want 0", s.ProfitFactor)
	}
	if s.Kelly != 0 || math.IsNaN(s.Kelly) || math.IsInf(s.Kelly, 0) {
		t.Fatalf("kelly=%v want 0 with no wins", s.Kelly)
	}
}

func TestCompute_NilPnLExcludedFromSums(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		trNoPnL("2026-01-06", models.OutcomeWin),
	}
	s := Compute(trades)
	if s.Wins != 2 {
		t.Fatalf("wins=%d want 2", s.Wins)
	}
	if s.AvgWin != 100 {
		t.Fatalf("avgWin=%v want 100, nil pnl must not dilute", s.AvgWin)
	}
	if s.TotalPnL != 100 {
		t.Fatalf("totalPnl=%v want 100", s.TotalPnL)
	}
}

func TestMaxDrawdown_NilPnLCountsAsZeroInWalk(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		trNoPnL("2026-01-06", models.OutcomeWin),
		tr("2026-01-07", models.OutcomeLoss, -80),
	}
	s := Compute(trades)
	// Sums and averages skip the nil entry entirely.
	if s.TotalPnL != 20 {
		t.Fatalf("totalPnl=%v want 20", s.TotalPnL)
	}
	if s.AvgLoss != 80 {
		t.Fatalf("avgLoss=%v want 80", s.AvgLoss)
	}
	// The drawdown walk still visits it, holding the running sum flat.
	if s.MaxDrawdown != 80 {
		t.Fatalf("maxDrawdown=%v want 80", s.MaxDrawdown)
	}
}

func TestMaxDrawdown_MissingDateWalkedFirst(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 50),
		tr("", models.OutcomeLoss, -100),
	}
	s := Compute(trades)
	// The empty date sorts before any ISO date, so the loss is walked
	// first and the full 100 registers as drawdown before the recovery.
	if s.MaxDrawdown != 100 {
		t.Fatalf("maxDrawdown=%v want 100", s.MaxDrawdown)
	}
}

func TestMaxDrawdown(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		tr("2026-01-06", models.OutcomeLoss, -50),
		tr("2026-01-07", models.OutcomeLoss, -80),
		tr("2026-01-08", models.OutcomeWin, 30),
	}
	s := Compute(trades)
	if s.MaxDrawdown != 130 {
		t.Fatalf("maxDrawdown=%v want 130", s.MaxDrawdown)
	}
}

func TestStreaks_ResetOnOtherOutcomes(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 10),
		tr("2026-01-06", models.OutcomeWin, 10),
		tr("2026-01-07", models.OutcomeLoss, -10),
		tr("2026-01-08", models.OutcomeWin, 10),
		tr("2026-01-09", models.OutcomeWin, 10),
		tr("2026-01-12", models.OutcomeWin, 10),
		tr("2026-01-13", models.OutcomeBreakEven, 0),
		tr("2026-01-14", models.OutcomeLoss, -10),
	}
	s := Compute(trades)
	if s.MaxWinStreak != 3 {
		t.Fatalf("maxWinStreak=%d want 3", s.MaxWinStreak)
	}
	if s.MaxLossStreak != 1 {
		t.Fatalf("maxLossStreak=%d want 1", s.MaxLossStreak)
	}
}

func TestCompute_Compliance(t *testing.T) {
	w := tr("2026-01-05", models.OutcomeWin, 10)
	w.Rules = models.RulesYes
	l := tr("2026-01-06", models.OutcomeLoss, -10)
	l.Rules = models.RulesNo
	p := tr("2026-01-07", models.OutcomeWin, 10)
	p.Rules = models.RulesPartial

	s := Compute([]models.Trade{w, l, p})
	if s.RulesCount != 1 || s.BrokenCount != 1 {
		t.Fatalf("rules/broken=%d/%d want 1/1", s.RulesCount, s.BrokenCount)
	}
	if s.Compliance <= 0.33 || s.Compliance >= 0.34 {
		t.Fatalf("compliance=%v want ~1/3", s.Compliance)
	}
	if s.WinRateRules != 1 {
		t.Fatalf("wrComp=%v want 1", s.WinRateRules)
	}
	if s.WinRateBroken != 0 {
		t.Fatalf("wrBroken=%v want 0", s.WinRateBroken)
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-08", models.OutcomeWin, 10),
		tr("2026-01-05", models.OutcomeLoss, -10),
	}
	_ = Compute(trades)
	if trades[0].Date != "2026-01-08" {
		t.Fatalf("input reordered, first date=%s", trades[0].Date)
	}
}

func TestKellyPercent_Clamp(t *testing.T) {
	if got := KellyPercent(-0.5); got != 0 {
		t.Fatalf("got %v want 0", got)
	}
	if got := KellyPercent(0.1); got != 10 {
		t.Fatalf("got %v want 10", got)
	}
	if got := KellyPercent(0.9); got != 25 {
		t.Fatalf("got %v want 25", got)
	}
}
