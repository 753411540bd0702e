package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"spytracker/internal/models"
	"spytracker/internal/repository"
	"spytracker/internal/stats"
)

// DailyStatsService periodically rebuilds the daily_stats cache from the
// trade log. The cache only feeds the daily breakdown listing; the stats
// endpoints always compute from trades directly.
type DailyStatsService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	UserID string
}

func (s *DailyStatsService) Run(ctx context.Context, interval time.Duration) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if err := s.RunOnce(ctx); err != nil && s.Logger != nil {
			s.Logger.Warn("daily stats rebuild failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (s *DailyStatsService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	trades, err := s.Repo.ListAllTrades(ctx, s.UserID)
	if err != nil {
		return err
	}

	rows := stats.ByDay(trades)
	items := make([]models.DailyStat, 0, len(rows))
	now := time.Now().UTC()
	for _, row := range rows {
		items = append(items, models.DailyStat{
			UserID:      s.UserID,
			Date:        row.Date,
			TradesCount: row.Count,
			WinCount:    row.Wins,
			LossCount:   row.Losses,
			PnL:         decimal.NewFromFloat(row.PnL).Round(2),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return s.Repo.ReplaceDailyStats(ctx, s.UserID, items)
}
