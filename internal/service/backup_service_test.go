package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"spytracker/internal/models"
)

func newBackupService(repo *stubRepo) *BackupService {
	return &BackupService{Repo: repo, UserID: "default"}
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	journal, repo := newJournalService()
	backup := newBackupService(repo)

	if _, err := journal.SaveTrade(ctx, TradeInput{
		Date:      "2026-01-05",
		Direction: models.DirectionLong,
		Entry:     dec("480"),
		Exit:      dec("481"),
		Shares:    dec("100"),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	repo.dayTypes["2026-01-05"] = models.DayTypeEntry{UserID: "default", Date: "2026-01-05", Type: models.DayTypeTrend}

	doc, err := backup.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	fresh := newStubRepo()
	restore := newBackupService(fresh)
	res, err := restore.Import(ctx, raw)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Trades != 1 || res.DayTypes != 1 {
		t.Fatalf("result=%+v want 1 trade and 1 day type", res)
	}
	if len(fresh.trades) != 1 {
		t.Fatalf("trades=%d want 1", len(fresh.trades))
	}
	for _, tr := range fresh.trades {
		if tr.PnL == nil || tr.PnL.String() != "100" {
			t.Fatalf("restored pnl=%v want 100", tr.PnL)
		}
	}
}

func TestImport_RejectsMissingTrades(t *testing.T) {
	restore := newBackupService(newStubRepo())
	if _, err := restore.Import(context.Background(), []byte(`{"gameplan":{}}`)); err == nil {
		t.Fatal("want invalid backup file")
	}
	if _, err := restore.Import(context.Background(), []byte(`not json`)); err == nil {
		t.Fatal("want invalid backup file")
	}
}

func TestImport_EmptyTradesArrayIsValid(t *testing.T) {
	restore := newBackupService(newStubRepo())
	res, err := restore.Import(context.Background(), []byte(`{"trades":[]}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Trades != 0 {
		t.Fatalf("trades=%d want 0", res.Trades)
	}
}

func TestImport_MintsMissingIDs(t *testing.T) {
	fresh := newStubRepo()
	restore := newBackupService(fresh)
	if _, err := restore.Import(context.Background(), []byte(`{"trades":[{"date":"2026-01-05","dir":"LONG"}]}`)); err != nil {
		t.Fatalf("import: %v", err)
	}
	for id := range fresh.trades {
		if id == "" {
			t.Fatal("imported trade kept an empty id")
		}
	}
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	journal, repo := newJournalService()
	backup := newBackupService(repo)

	if _, err := journal.SaveTrade(ctx, TradeInput{
		Date:      "2026-01-05",
		Time:      "09:45",
		Direction: models.DirectionLong,
		Setup:     "Gap Fill",
		Entry:     dec("480"),
		Stop:      dec("479.5"),
		Exit:      dec("481"),
		Shares:    dec("100"),
		Rules:     models.RulesYes,
		Good:      `Waited for the "reclaim" candle`,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := backup.ExportCSV(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines=%d want header plus one row", len(lines))
	}
	if lines[0] != "Date,Time,Dir,Setup,DayType,Outcome,Entry,Stop,Exit,Shares,PnL,RR,Rules,Emotion,Good,Improve" {
		t.Fatalf("header=%q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2026-01-05,09:45,LONG,Gap Fill,,win,480,479.5,481,100,100,2.00R,yes,") {
		t.Fatalf("row=%q", lines[1])
	}
	if !strings.Contains(lines[1], `"Waited for the 'reclaim' candle"`) {
		t.Fatalf("row=%q, double quotes in free text must become single quotes", lines[1])
	}
}
