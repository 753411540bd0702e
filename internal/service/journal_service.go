package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"spytracker/internal/journal"
	"spytracker/internal/models"
	"spytracker/internal/repository"
)

// ErrValidation wraps all input rejection so handlers can map it to a 400.
var ErrValidation = errors.New("validation")

// ErrNotFound is returned when a record addressed by id or date is absent.
var ErrNotFound = errors.New("not found")

// JournalService owns the trade log write path: validation, id minting,
// and the derivation of pnl, rr, and outcome from price inputs.
type JournalService struct {
	Repo   repository.Repository
	UserID string
}

// TradeInput is the full editable surface of a trade. The derived fields
// (PnL, RR, Outcome) are pointers so the service can tell a cleared field
// from a supplied one: nil means re-derive, a value that differs from the
// derivation becomes a manual override.
type TradeInput struct {
	ID string `json:"id"`

	Date string `json:"date"`
	Time string `json:"time"`

	Direction string `json:"dir"`
	Setup     string `json:"setup"`
	DayType   string `json:"dayType"`

	Entry   *decimal.Decimal `json:"entry"`
	Stop    *decimal.Decimal `json:"stop"`
	Exit    *decimal.Decimal `json:"exit"`
	Shares  *decimal.Decimal `json:"shares"`
	Options bool             `json:"options"`

	PnL     *decimal.Decimal `json:"pnl"`
	RR      *string          `json:"rr"`
	Outcome *string          `json:"outcome"`

	Rules   string `json:"rules"`
	Emotion string `json:"emotion"`
	Good    string `json:"good"`
	Improve string `json:"improve"`
}

// SaveTrade validates, derives, and upserts one trade. A missing id mints
// a new ULID so the save doubles as a create.
func (s *JournalService) SaveTrade(ctx context.Context, in TradeInput) (*models.Trade, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("journal service not configured")
	}
	if err := validateTradeInput(in); err != nil {
		return nil, err
	}

	id := in.ID
	if id == "" {
		id = ulid.Make().String()
	}

	item := &models.Trade{
		ID:        id,
		UserID:    s.UserID,
		Date:      in.Date,
		Time:      in.Time,
		Direction: in.Direction,
		Setup:     in.Setup,
		DayType:   in.DayType,
		Entry:     in.Entry,
		Stop:      in.Stop,
		Exit:      in.Exit,
		Shares:    in.Shares,
		Options:   in.Options,
		Rules:     in.Rules,
		Emotion:   in.Emotion,
		Good:      in.Good,
		Improve:   in.Improve,
		UpdatedAt: time.Now().UTC(),
	}

	derived := journal.Derive(journal.DeriveInput{
		Direction: in.Direction,
		Options:   in.Options,
		Entry:     in.Entry,
		Stop:      in.Stop,
		Exit:      in.Exit,
		Shares:    in.Shares,
	})
	applyDerived(item, in, derived)

	if err := s.Repo.UpsertTrade(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *JournalService) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("journal service not configured")
	}
	item, err := s.Repo.GetTradeByID(ctx, s.UserID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *JournalService) DeleteTrade(ctx context.Context, id string) error {
	if s == nil || s.Repo == nil {
		return errors.New("journal service not configured")
	}
	item, err := s.Repo.GetTradeByID(ctx, s.UserID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.Repo.DeleteTrade(ctx, s.UserID, id)
}

// Snapshot is the full journal state loaded in one round trip, keyed the
// way the views consume it: per-day records indexed by date.
type Snapshot struct {
	Trades     []models.Trade              `json:"trades"`
	GamePlans  map[string]models.GamePlan  `json:"gameplan"`
	Checklists map[string]models.Checklist `json:"checklists"`
	DayTypes   map[string]string           `json:"dayTypes"`
}

func (s *JournalService) LoadAll(ctx context.Context) (*Snapshot, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("journal service not configured")
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

	snap := &Snapshot{
		Trades:     trades,
		GamePlans:  make(map[string]models.GamePlan, len(plans)),
		Checklists: make(map[string]models.Checklist, len(checklists)),
		DayTypes:   make(map[string]string, len(dayTypes)),
	}
	for _, p := range plans {
		snap.GamePlans[p.Date] = p
	}
	for _, c := range checklists {
		snap.Checklists[c.Date] = c
	}
	for _, d := range dayTypes {
		snap.DayTypes[d.Date] = d.Type
	}
	return snap, nil
}

// applyDerived fills pnl, rr, and outcome on the trade. Each field takes
// the derivation unless the input supplies a different value, which marks
// it as a manual override.
func applyDerived(item *models.Trade, in TradeInput, derived journal.Derived) {
	switch {
	case in.PnL == nil:
		item.PnL = derived.PnL
		if derived.PnL != nil {
			item.PnLSource = models.SourceDerived
		}
	case derived.PnL != nil && in.PnL.Equal(*derived.PnL):
		item.PnL = derived.PnL
		item.PnLSource = models.SourceDerived
	default:
		item.PnL = in.PnL
		item.PnLSource = models.SourceManual
	}

	switch {
	case in.RR == nil || *in.RR == "":
		item.RR = derived.RR
		if derived.RR != "" {
			item.RRSource = models.SourceDerived
		}
	case *in.RR == derived.RR:
		item.RR = derived.RR
		item.RRSource = models.SourceDerived
	default:
		item.RR = *in.RR
		item.RRSource = models.SourceManual
	}

	switch {
	case in.Outcome == nil || *in.Outcome == "":
		item.Outcome = derived.Outcome
		if derived.Outcome != "" {
			item.OutcomeSource = models.SourceDerived
		}
	case *in.Outcome == derived.Outcome:
		item.Outcome = derived.Outcome
		item.OutcomeSource = models.SourceDerived
	default:
		item.Outcome = *in.Outcome
		item.OutcomeSource = models.SourceManual
	}
}

func validateTradeInput(in TradeInput) error {
	if err := ValidateDate(in.Date); err != nil {
		return err
	}
	if in.Time != "" {
		if _, err := time.Parse("15:04", in.Time); err != nil {
			return fmt.Errorf("%w: time must be HH:MM", ErrValidation)
		}
	}
	switch in.Direction {
	case models.DirectionLong, models.DirectionShort:
	default:
		return fmt.Errorf("%w: dir must be LONG or SHORT", ErrValidation)
	}
	switch in.Rules {
	case "", models.RulesYes, models.RulesNo, models.RulesPartial:
	default:
		return fmt.Errorf("%w: rules must be yes, no, or partial", ErrValidation)
	}
	if in.Outcome != nil {
		switch *in.Outcome {
		case "", models.OutcomeWin, models.OutcomeLoss, models.OutcomeBreakEven:
		default:
			return fmt.Errorf("%w: outcome must be win, loss, or be", ErrValidation)
		}
	}
	if in.Shares != nil && in.Shares.IsNegative() {
		return fmt.Errorf("%w: shares must not be negative", ErrValidation)
	}
	return nil
}

// ValidateDate enforces the ISO calendar date key shared by all the
// per-day tables.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return nil
}
