package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"spytracker/internal/models"
	"spytracker/internal/repository"
)

// PlannerService owns the per-day records around the trade log: the
// pre-market game plan, the checklist state, and the day classification.
type PlannerService struct {
	Repo   repository.Repository
	UserID string
}

// GamePlanInput is a partial update: nil fields leave the stored value
// untouched so the plan can be filled in one field at a time.
type GamePlanInput struct {
	Bias    *string          `json:"bias"`
	Account *decimal.Decimal `json:"account"`
	MaxLoss *decimal.Decimal `json:"maxloss"`
	Level   *string          `json:"level"`
	Setups  *string          `json:"setups"`
	Notes   *string          `json:"notes"`
}

func (s *PlannerService) UpsertGamePlan(ctx context.Context, date string, in GamePlanInput) (*models.GamePlan, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("planner service not configured")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	item, err := s.Repo.GetGamePlan(ctx, s.UserID, date)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &models.GamePlan{UserID: s.UserID, Date: date}
	}
	if in.Bias != nil {
		item.Bias = *in.Bias
	}
	if in.Account != nil {
		item.Account = in.Account
	}
	if in.MaxLoss != nil {
		item.MaxLoss = in.MaxLoss
	}
	if in.Level != nil {
		item.Level = *in.Level
	}
	if in.Setups != nil {
		item.Setups = *in.Setups
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.Repo.UpsertGamePlan(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PlannerService) GetGamePlan(ctx context.Context, date string) (*models.GamePlan, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("planner service not configured")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	return s.Repo.GetGamePlan(ctx, s.UserID, date)
}

// ToggleChecklistItem flips one checklist box and returns the stored
// per-day state. The state is a map of group name to item index to
// checked flag; absent entries read as unchecked.
func (s *PlannerService) ToggleChecklistItem(ctx context.Context, date, group string, index int) (*models.Checklist, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("planner service not configured")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if group == "" {
		return nil, fmt.Errorf("%w: group is required", ErrValidation)
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: index must not be negative", ErrValidation)
	}

	item, err := s.Repo.GetChecklist(ctx, s.UserID, date)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &models.Checklist{UserID: s.UserID, Date: date}
	}

	state := map[string]map[string]bool{}
	if len(item.Data) > 0 {
		if err := json.Unmarshal(item.Data, &state); err != nil {
			return nil, err
		}
	}
	key := strconv.Itoa(index)
	if state[group] == nil {
		state[group] = map[string]bool{}
	}
	state[group][key] = !state[group][key]

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	item.Data = datatypes.JSON(raw)
	item.UpdatedAt = time.Now().UTC()

	if err := s.Repo.UpsertChecklist(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ResetChecklist clears all boxes for the day.
func (s *PlannerService) ResetChecklist(ctx context.Context, date string) (*models.Checklist, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("planner service not configured")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	item, err := s.Repo.GetChecklist(ctx, s.UserID, date)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &models.Checklist{UserID: s.UserID, Date: date}
	}
	item.Data = datatypes.JSON([]byte("{}"))
	item.UpdatedAt = time.Now().UTC()

	if err := s.Repo.UpsertChecklist(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PlannerService) SetDayType(ctx context.Context, date, dayType string) (*models.DayTypeEntry, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("planner service not configured")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	switch dayType {
	case models.DayTypeTrend, models.DayTypeChop, models.DayTypeReversal:
	default:
		return nil, fmt.Errorf("%w: type must be trend, chop, or reversal", ErrValidation)
	}

	item := &models.DayTypeEntry{
		UserID:    s.UserID,
		Date:      date,
		Type:      dayType,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Repo.UpsertDayType(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
