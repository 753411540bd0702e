package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"spytracker/internal/models"
)

func dec(v string) *decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return &d
}

func strPtr(v string) *string { return &v }

func newJournalService() (*JournalService, *stubRepo) {
	repo := newStubRepo()
	return &JournalService{Repo: repo, UserID: "default"}, repo
}

func TestSaveTrade_MintsIDAndDerives(t *testing.T) {
	svc, _ := newJournalService()
	item, err := svc.SaveTrade(context.Background(), TradeInput{
		Date:      "2026-01-05",
		Time:      "09:45",
		Direction: models.DirectionLong,
		Entry:     dec("480"),
		Stop:      dec("479.5"),
		Exit:      dec("481"),
		Shares:    dec("100"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if item.ID == "" {
		t.Fatal("want a minted id")
	}
	if item.PnL == nil || !item.PnL.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("pnl=%v want 100", item.PnL)
	}
	if item.PnLSource != models.SourceDerived {
		t.Fatalf("pnlSource=%q want derived", item.PnLSource)
	}
	if item.RR != "2.00R" || item.RRSource != models.SourceDerived {
		t.Fatalf("rr=%q source=%q", item.RR, item.RRSource)
	}
	if item.Outcome != models.OutcomeWin || item.OutcomeSource != models.SourceDerived {
		t.Fatalf("outcome=%q source=%q", item.Outcome, item.OutcomeSource)
	}
}

func TestSaveTrade_SuppliedValueMatchingDerivationStaysDerived(t *testing.T) {
	svc, _ := newJournalService()
	item, err := svc.SaveTrade(context.Background(), TradeInput{
		Date:      "2026-01-05",
		Direction: models.DirectionLong,
		Entry:     dec("480"),
		Exit:      dec("481"),
		Shares:    dec("100"),
		PnL:       dec("100"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if item.PnLSource != models.SourceDerived {
		t.Fatalf("pnlSource=%q want derived, supplied value equals derivation", item.PnLSource)
	}
}

func TestSaveTrade_ManualOverride(t *testing.T) {
	svc, _ := newJournalService()
	out := "loss"
	item, err := svc.SaveTrade(context.Background(), TradeInput{
		Date:      "2026-01-05",
		Direction: models.DirectionLong,
		Entry:     dec("480"),
		Exit:      dec("481"),
		Shares:    dec("100"),
		PnL:       dec("-25"),
		Outcome:   &out,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !item.PnL.Equal(decimal.NewFromInt(-25)) || item.PnLSource != models.SourceManual {
		t.Fatalf("pnl=%v source=%q want -25/manual", item.PnL, item.PnLSource)
	}
	if item.Outcome != models.OutcomeLoss || item.OutcomeSource != models.SourceManual {
		t.Fatalf("outcome=%q source=%q want loss/manual", item.Outcome, item.OutcomeSource)
	}
}

func TestSaveTrade_ClearingOverrideRederives(t *testing.T) {
	svc, _ := newJournalService()
	first, err := svc.SaveTrade(context.Background(), TradeInput{
		Date:      "2026-01-05",
		Direction: models.DirectionLong,
		Entry:     dec("480"),
		Exit:      dec("481"),
		Shares:    dec("100"),
		PnL:       dec("-25"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.PnLSource != models.SourceManual {
		t.Fatalf("setup: source=%q want manual", first.PnLSource)
	}

	second, err := svc.SaveTrade(context.Background(), TradeInput{
		ID:        first.ID,
		Date:      "2026-01-05",
		Direction: models.DirectionLong,
		Entry:     dec("480"),
		Exit:      dec("481"),
		Shares:    dec("100"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if second.PnL == nil || !second.PnL.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("pnl=%v want 100 after clearing the override", second.PnL)
	}
	if second.PnLSource != models.SourceDerived {
		t.Fatalf("source=%q want derived", second.PnLSource)
	}
}

func TestSaveTrade_Validation(t *testing.T) {
	svc, _ := newJournalService()
	cases := []TradeInput{
		{Date: "", Direction: models.DirectionLong},
		{Date: "01/05/2026", Direction: models.DirectionLong},
		{Date: "2026-01-05", Direction: "BOTH"},
		{Date: "2026-01-05", Direction: models.DirectionLong, Time: "9am"},
		{Date: "2026-01-05", Direction: models.DirectionLong, Rules: "maybe"},
		{Date: "2026-01-05", Direction: models.DirectionLong, Outcome: strPtr("draw")},
		{Date: "2026-01-05", Direction: models.DirectionLong, Shares: dec("-1")},
	}
	for i, in := range cases {
		if _, err := svc.SaveTrade(context.Background(), in); err == nil {
			t.Fatalf("case %d: want validation error", i)
		}
	}
}

func TestDeleteTrade_NotFound(t *testing.T) {
	svc, _ := newJournalService()
	if err := svc.DeleteTrade(context.Background(), "missing"); err == nil {
		t.Fatal("want not found")
	}
}

func TestLoadAll_KeysByDate(t *testing.T) {
	svc, repo := newJournalService()
	if _, err := svc.SaveTrade(context.Background(), TradeInput{
		Date:      "2026-01-05",
		Direction: models.DirectionLong,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	repo.gamePlans["2026-01-05"] = models.GamePlan{UserID: "default", Date: "2026-01-05", Bias: "long"}
	repo.dayTypes["2026-01-05"] = models.DayTypeEntry{UserID: "default", Date: "2026-01-05", Type: models.DayTypeTrend}

	snap, err := svc.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Trades) != 1 {
		t.Fatalf("trades=%d want 1", len(snap.Trades))
	}
	if snap.GamePlans["2026-01-05"].Bias != "long" {
		t.Fatalf("gameplan=%+v", snap.GamePlans["2026-01-05"])
	}
	if snap.DayTypes["2026-01-05"] != models.DayTypeTrend {
		t.Fatalf("dayTypes=%+v", snap.DayTypes)
	}
}
