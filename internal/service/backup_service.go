package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"spytracker/internal/models"
	"spytracker/internal/repository"
)

// BackupService handles full-journal export and restore. The backup is a
// single JSON document carrying every table, and the CSV export is the
// flat spreadsheet view of the trade log.
type BackupService struct {
	Repo   repository.Repository
	UserID string
}

// Backup is the portable journal snapshot. The per-day tables are keyed
// by date so a restore can upsert them without ordering concerns.
type Backup struct {
	Trades     []models.Trade              `json:"trades"`
	GamePlans  map[string]models.GamePlan  `json:"gameplan"`
	Checklists map[string]models.Checklist `json:"checklists"`
	DayTypes   map[string]string           `json:"dayTypes"`
	ExportedAt time.Time                   `json:"exportedAt"`
}

// ImportResult reports what a restore wrote.
type ImportResult struct {
	Trades     int `json:"trades"`
	GamePlans  int `json:"gameplans"`
	Checklists int `json:"checklists"`
	DayTypes   int `json:"dayTypes"`
}

func (s *BackupService) Export(ctx context.Context) (*Backup, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("backup service not configured")
	}
	trades, err := s.Repo.ListAllTrades(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	plans, err := s.Repo.ListGamePlans(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	checklists, err := s.Repo.ListChecklists(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	dayTypes, err := s.Repo.ListDayTypes(ctx, s.UserID)
	if err != nil {
		return nil, err
	}

	out := &Backup{
		Trades:     trades,
		GamePlans:  make(map[string]models.GamePlan, len(plans)),
		Checklists: make(map[string]models.Checklist, len(checklists)),
		DayTypes:   make(map[string]string, len(dayTypes)),
		ExportedAt: time.Now().UTC(),
	}
	for _, p := range plans {
		out.GamePlans[p.Date] = p
	}
	for _, c := range checklists {
		out.Checklists[c.Date] = c
	}
	for _, d := range dayTypes {
		out.DayTypes[d.Date] = d.Type
	}
	return out, nil
}

// Import restores a backup document. A payload without a trades array is
// rejected as an invalid backup file; everything present is upserted by
// its natural key, so importing over existing data merges rather than
// duplicates.
func (s *BackupService) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("backup service not configured")
	}

	var doc Backup
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid backup file", ErrValidation)
	}
	if doc.Trades == nil {
		return nil, fmt.Errorf("%w: invalid backup file", ErrValidation)
	}

	var res ImportResult
	for i := range doc.Trades {
		t := doc.Trades[i]
		if t.ID == "" {
			t.ID = ulid.Make().String()
		}
		t.UserID = s.UserID
		if err := s.Repo.UpsertTrade(ctx, &t); err != nil {
			return nil, err
		}
		res.Trades++
	}
	for date, p := range doc.GamePlans {
		p.ID = 0
		p.UserID = s.UserID
		p.Date = date
		if err := s.Repo.UpsertGamePlan(ctx, &p); err != nil {
			return nil, err
		}
		res.GamePlans++
	}
	for date, c := range doc.Checklists {
		c.ID = 0
		c.UserID = s.UserID
		c.Date = date
		if len(c.Data) == 0 {
			c.Data = []byte("{}")
		}
		if err := s.Repo.UpsertChecklist(ctx, &c); err != nil {
			return nil, err
		}
		res.Checklists++
	}
	for date, typ := range doc.DayTypes {
		item := &models.DayTypeEntry{UserID: s.UserID, Date: date, Type: typ}
		if err := s.Repo.UpsertDayType(ctx, item); err != nil {
			return nil, err
		}
		res.DayTypes++
	}
	return &res, nil
}

var csvHeader = []string{
	"Date", "Time", "Dir", "Setup", "DayType", "Outcome",
	"Entry", "Stop", "Exit", "Shares", "PnL", "RR",
	"Rules", "Emotion", "Good", "Improve",
}

// ExportCSV renders the trade log as a spreadsheet. The two free-text
// columns are quote-wrapped with embedded double quotes rewritten to
// single quotes; every other column is written bare.
func (s *BackupService) ExportCSV(ctx context.Context) ([]byte, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("backup service not configured")
	}
	trades, err := s.Repo.ListAllTrades(ctx, s.UserID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')
	for _, t := range trades {
		row := []string{
			t.Date,
			t.Time,
			t.Direction,
			t.Setup,
			t.DayType,
			t.Outcome,
			decimalCell(t.Entry),
			decimalCell(t.Stop),
			decimalCell(t.Exit),
			decimalCell(t.Shares),
			decimalCell(t.PnL),
			t.RR,
			t.Rules,
			t.Emotion,
			freeTextCell(t.Good),
			freeTextCell(t.Improve),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func decimalCell(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func freeTextCell(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `'`) + `"`
}
