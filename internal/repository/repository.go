package repository

import (
	"context"

	"gorm.io/gorm"

	"spytracker/internal/models"
)

// Repository is the record store boundary: durable storage for trades,
// game plans, checklist state, and day-type classifications, keyed by
// user and (for the per-day tables) calendar date.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Trades
	ListTrades(ctx context.Context, params ListTradesParams) ([]models.Trade, error)
	CountTrades(ctx context.Context, params ListTradesParams) (int64, error)
	ListAllTrades(ctx context.Context, userID string) ([]models.Trade, error)
	GetTradeByID(ctx context.Context, userID, id string) (*models.Trade, error)
	UpsertTrade(ctx context.Context, item *models.Trade) error
	DeleteTrade(ctx context.Context, userID, id string) error

	// Game plans
	ListGamePlans(ctx context.Context, userID string) ([]models.GamePlan, error)
	GetGamePlan(ctx context.Context, userID, date string) (*models.GamePlan, error)
	UpsertGamePlan(ctx context.Context, item *models.GamePlan) error

	// Checklists
	ListChecklists(ctx context.Context, userID string) ([]models.Checklist, error)
	GetChecklist(ctx context.Context, userID, date string) (*models.Checklist, error)
	UpsertChecklist(ctx context.Context, item *models.Checklist) error

	// Day types
	ListDayTypes(ctx context.Context, userID string) ([]models.DayTypeEntry, error)
	UpsertDayType(ctx context.Context, item *models.DayTypeEntry) error

	// Daily stats cache
	ListDailyStats(ctx context.Context, params ListDailyStatsParams) ([]models.DailyStat, error)
	ReplaceDailyStats(ctx context.Context, userID string, items []models.DailyStat) error
}

type ListTradesParams struct {
	UserID  string
	Limit   int
	Offset  int
	Setup   *string
	DayType *string
	Outcome *string
	Rules   *string
	From    *string
	To      *string
	Date    *string
	OrderBy string
	Asc     *bool
}

type ListDailyStatsParams struct {
	UserID string
	Limit  int
	Offset int
	Since  *string
	Until  *string
}
