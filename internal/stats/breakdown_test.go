package stats

import (
	"testing"

	"spytracker/internal/models"
)

func TestByField_DropsEmptyBuckets(t *testing.T) {
	a := tr("2026-01-05", models.OutcomeWin, 100)
	a.Setup = "Gap Fill"
	b := tr("2026-01-06", models.OutcomeLoss, -40)
	b.Setup = "Gap Fill"
	c := tr("2026-01-07", models.OutcomeWin, 20)
	c.Setup = "ORB Breakout"

	catalog := []string{"VWAP Reclaim", "Gap Fill", "ORB Breakout"}
	rows := ByField([]models.Trade{a, b, c}, FieldSetup, catalog)
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2, empty catalog buckets must be dropped", len(rows))
	}
	if rows[0].Label != "Gap Fill" || rows[0].Count != 2 || rows[0].Wins != 1 {
		t.Fatalf("row0=%+v", rows[0])
	}
	if rows[0].WinRate != 0.5 {
		t.Fatalf("winRate=%v want 0.5", rows[0].WinRate)
	}
	if rows[0].TotalPnL != 60 {
		t.Fatalf("totalPnl=%v want 60", rows[0].TotalPnL)
	}
	if rows[1].Label != "ORB Breakout" || rows[1].Count != 1 {
		t.Fatalf("row1=%+v", rows[1])
	}
}

func TestByField_UnknownField(t *testing.T) {
	a := tr("2026-01-05", models.OutcomeWin, 100)
	rows := ByField([]models.Trade{a}, "nope", []string{"x"})
	if len(rows) != 0 {
		t.Fatalf("rows=%d want 0", len(rows))
	}
}

func TestByTimeSlot_HalfOpenWindows(t *testing.T) {
	early := tr("2026-01-05", models.OutcomeWin, 50)
	early.Time = "09:30"
	edge := tr("2026-01-05", models.OutcomeLoss, -20)
	edge.Time = "10:00"
	noTime := tr("2026-01-05", models.OutcomeWin, 5)

	slots := []TimeSlot{
		{Label: "open", Min: 570, Max: 600},
		{Label: "mid", Min: 600, Max: 690},
	}
	rows := ByTimeSlot([]models.Trade{early, edge, noTime}, slots)
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2", len(rows))
	}
	if rows[0].Label != "open" || rows[0].Count != 1 {
		t.Fatalf("row0=%+v want the 09:30 trade only", rows[0])
	}
	if rows[1].Label != "mid" || rows[1].Count != 1 {
		t.Fatalf("row1=%+v want the 10:00 trade, max is exclusive", rows[1])
	}
}

func TestByDay_NewestFirst(t *testing.T) {
	rows := ByDay([]models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		tr("2026-01-06", models.OutcomeLoss, -40),
		tr("2026-01-05", models.OutcomeLoss, -30),
		{Outcome: models.OutcomeWin},
	})
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2, dateless trades must be skipped", len(rows))
	}
	if rows[0].Date != "2026-01-06" {
		t.Fatalf("row0 date=%s want 2026-01-06", rows[0].Date)
	}
	if rows[1].Date != "2026-01-05" || rows[1].Count != 2 || rows[1].Wins != 1 || rows[1].Losses != 1 {
		t.Fatalf("row1=%+v", rows[1])
	}
	if rows[1].PnL != 70 {
		t.Fatalf("day pnl=%v want 70", rows[1].PnL)
	}
}

func TestEquityCurve_LastNWithPnL(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		trNoPnL("2026-01-06", models.OutcomeWin),
		tr("2026-01-07", models.OutcomeLoss, -40),
		tr("2026-01-08", models.OutcomeWin, 10),
	}
	points := EquityCurve(trades, 2)
	if len(points) != 2 {
		t.Fatalf("points=%d want 2", len(points))
	}
	if points[0].Date != "2026-01-07" || points[0].Cumulative != -40 {
		t.Fatalf("point0=%+v", points[0])
	}
	if points[1].Date != "2026-01-08" || points[1].Cumulative != -30 {
		t.Fatalf("point1=%+v", points[1])
	}
}

func TestExtremes(t *testing.T) {
	trades := []models.Trade{
		tr("2026-01-05", models.OutcomeWin, 100),
		tr("2026-01-06", models.OutcomeLoss, -40),
		tr("2026-01-07", models.OutcomeWin, 250),
		trNoPnL("2026-01-08", models.OutcomeWin),
	}
	best, worst := Extremes(trades, 2)
	if len(best) != 2 || len(worst) != 2 {
		t.Fatalf("best=%d worst=%d want 2/2", len(best), len(worst))
	}
	if !best[0].PnL.Equal(*trades[2].PnL) {
		t.Fatalf("best0 pnl=%s want 250", best[0].PnL)
	}
	if !worst[0].PnL.Equal(*trades[1].PnL) {
		t.Fatalf("worst0 pnl=%s want -40", worst[0].PnL)
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in  string
		out int
		ok  bool
	}{
		{"09:30", 570, true},
		{"16:00", 960, true},
		{"", 0, false},
		{"9", 0, false},
		{"25:00", 0, false},
		{"10:75", 0, false},
	}
	for _, tc := range cases {
		got, ok := clockMinutes(tc.in)
		if got != tc.out || ok != tc.ok {
			t.Fatalf("clockMinutes(%q)=(%d,%v) want (%d,%v)", tc.in, got, ok, tc.out, tc.ok)
		}
	}
}
