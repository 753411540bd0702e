package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"spytracker/internal/models"
	"spytracker/internal/repository"
)

// stubRepo is an in-memory Repository for service tests.
type stubRepo struct {
	trades     map[string]models.Trade
	gamePlans  map[string]models.GamePlan
	checklists map[string]models.Checklist
	dayTypes   map[string]models.DayTypeEntry
	dailyStats []models.DailyStat
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		trades:     map[string]models.Trade{},
		gamePlans:  map[string]models.GamePlan{},
		checklists: map[string]models.Checklist{},
		dayTypes:   map[string]models.DayTypeEntry{},
	}
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (s *stubRepo) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	return s.ListAllTrades(ctx, params.UserID)
}

func (s *stubRepo) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	return int64(len(s.trades)), nil
}

func (s *stubRepo) ListAllTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	out := make([]models.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *stubRepo) GetTradeByID(ctx context.Context, userID, id string) (*models.Trade, error) {
	t, ok := s.trades[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *stubRepo) UpsertTrade(ctx context.Context, item *models.Trade) error {
	s.trades[item.ID] = *item
	return nil
}

func (s *stubRepo) DeleteTrade(ctx context.Context, userID, id string) error {
	delete(s.trades, id)
	return nil
}

func (s *stubRepo) ListGamePlans(ctx context.Context, userID string) ([]models.GamePlan, error) {
	out := make([]models.GamePlan, 0, len(s.gamePlans))
	for _, p := range s.gamePlans {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubRepo) GetGamePlan(ctx context.Context, userID, date string) (*models.GamePlan, error) {
	p, ok := s.gamePlans[date]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *stubRepo) UpsertGamePlan(ctx context.Context, item *models.GamePlan) error {
	s.gamePlans[item.Date] = *item
	return nil
}

func (s *stubRepo) ListChecklists(ctx context.Context, userID string) ([]models.Checklist, error) {
	out := make([]models.Checklist, 0, len(s.checklists))
	for _, c := range s.checklists {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubRepo) GetChecklist(ctx context.Context, userID, date string) (*models.Checklist, error) {
	c, ok := s.checklists[date]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *stubRepo) UpsertChecklist(ctx context.Context, item *models.Checklist) error {
	s.checklists[item.Date] = *item
	return nil
}

func (s *stubRepo) ListDayTypes(ctx context.Context, userID string) ([]models.DayTypeEntry, error) {
	out := make([]models.DayTypeEntry, 0, len(s.dayTypes))
	for _, d := range s.dayTypes {
		out = append(out, d)
	}
	return out, nil
}

func (s *stubRepo) UpsertDayType(ctx context.Context, item *models.DayTypeEntry) error {
	s.dayTypes[item.Date] = *item
	return nil
}

func (s *stubRepo) ListDailyStats(ctx context.Context, params repository.ListDailyStatsParams) ([]models.DailyStat, error) {
	return s.dailyStats, nil
}

func (s *stubRepo) ReplaceDailyStats(ctx context.Context, userID string, items []models.DailyStat) error {
	s.dailyStats = items
	return nil
}

var _ repository.Repository = (*stubRepo)(nil)
