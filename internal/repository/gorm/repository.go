package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spytracker/internal/models"
	"spytracker/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Trades -----------------------------------------------------------------

func (s *Store) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.tradeQuery(ctx, params)
	query = applyOrder(query, params.OrderBy, params.Asc, "date")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.Trade
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.tradeQuery(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListAllTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Trade
	if err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("user_id = ?", userID).
		Order("date asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetTradeByID(ctx context.Context, userID, id string) (*models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Trade
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertTrade(ctx context.Context, item *models.Trade) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.ID) == "" {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date",
			"time",
			"direction",
			"setup",
			"day_type",
			"outcome",
			"entry",
			"stop",
			"exit",
			"shares",
			"options",
			"pnl",
			"rr",
			"rules",
			"emotion",
			"good",
			"improve",
			"pnl_source",
			"rr_source",
			"outcome_source",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) DeleteTrade(ctx context.Context, userID, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Trade{}).Error
}

func (s *Store) tradeQuery(ctx context.Context, params repository.ListTradesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Trade{}).
		Where("user_id = ?", params.UserID)
	if params.Setup != nil && strings.TrimSpace(*params.Setup) != "" {
		query = query.Where("setup = ?", strings.TrimSpace(*params.Setup))
	}
	if params.DayType != nil && strings.TrimSpace(*params.DayType) != "" {
		query = query.Where("day_type = ?", strings.TrimSpace(*params.DayType))
	}
	if params.Outcome != nil && strings.TrimSpace(*params.Outcome) != "" {
		query = query.Where("outcome = ?", strings.TrimSpace(*params.Outcome))
	}
	if params.Rules != nil && strings.TrimSpace(*params.Rules) != "" {
		query = query.Where("rules = ?", strings.TrimSpace(*params.Rules))
	}
	if params.Date != nil && *params.Date != "" {
		query = query.Where("date = ?", *params.Date)
	}
	if params.From != nil && *params.From != "" {
		query = query.Where("date >= ?", *params.From)
	}
	if params.To != nil && *params.To != "" {
		query = query.Where("date <= ?", *params.To)
	}
	return query
}

// --- Game plans -------------------------------------------------------------

func (s *Store) ListGamePlans(ctx context.Context, userID string) ([]models.GamePlan, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.GamePlan
	if err := s.db.WithContext(ctx).
		Model(&models.GamePlan{}).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetGamePlan(ctx context.Context, userID, date string) (*models.GamePlan, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.GamePlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertGamePlan(ctx context.Context, item *models.GamePlan) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"bias",
			"account",
			"maxloss",
			"level",
			"setups",
			"notes",
			"updated_at",
		}),
	}).Create(item).Error
}

// --- Checklists -------------------------------------------------------------

func (s *Store) ListChecklists(ctx context.Context, userID string) ([]models.Checklist, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Checklist
	if err := s.db.WithContext(ctx).
		Model(&models.Checklist{}).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetChecklist(ctx context.Context, userID, date string) (*models.Checklist, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Checklist
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertChecklist(ctx context.Context, item *models.Checklist) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"data",
			"updated_at",
		}),
	}).Create(item).Error
}

// --- Day types --------------------------------------------------------------

func (s *Store) ListDayTypes(ctx context.Context, userID string) ([]models.DayTypeEntry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.DayTypeEntry
	if err := s.db.WithContext(ctx).
		Model(&models.DayTypeEntry{}).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpsertDayType(ctx context.Context, item *models.DayTypeEntry) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"type",
			"updated_at",
		}),
	}).Create(item).Error
}

// --- Daily stats ------------------------------------------------------------

func (s *Store) ListDailyStats(ctx context.Context, params repository.ListDailyStatsParams) ([]models.DailyStat, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.DailyStat{}).
		Where("user_id = ?", params.UserID)
	if params.Since != nil && *params.Since != "" {
		query = query.Where("date >= ?", *params.Since)
	}
	if params.Until != nil && *params.Until != "" {
		query = query.Where("date <= ?", *params.Until)
	}
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.DailyStat
	if err := query.Order("date desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ReplaceDailyStats(ctx context.Context, userID string, items []models.DailyStat) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.InTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.DailyStat{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
