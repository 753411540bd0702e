package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction of a trade.
const (
	DirectionLong  = "LONG"
	DirectionShort = "SHORT"
)

// Outcome values. Auto-set from the sign of the derived P&L unless
// manually overridden.
const (
	OutcomeWin       = "win"
	OutcomeLoss      = "loss"
	OutcomeBreakEven = "be"
)

// Self-reported rules compliance.
const (
	RulesYes     = "yes"
	RulesNo      = "no"
	RulesPartial = "partial"
)

// Provenance of a derived field (pnl, rr, outcome). Empty means the field
// was never set; "derived" means the server computed it from price inputs;
// "manual" means the user overrode it and it must not be re-derived.
const (
	SourceUnset   = ""
	SourceDerived = "derived"
	SourceManual  = "manual"
)

// Trade is a single journaled SPY day-trade. Price fields are optional:
// a nil pointer means the user left the input empty, which disables the
// derived fields that depend on it.
type Trade struct {
	ID     string `gorm:"type:varchar(40);primaryKey" json:"id"`
	UserID string `gorm:"type:varchar(40);not null;index" json:"-"`

	Date string `gorm:"type:varchar(10);index" json:"date"`
	Time string `gorm:"type:varchar(5)" json:"time"`

	Direction string `gorm:"type:varchar(8);not null" json:"dir"`
	Setup     string `gorm:"type:varchar(40);index" json:"setup"`
	DayType   string `gorm:"type:varchar(12);index" json:"dayType"`
	Outcome   string `gorm:"type:varchar(8);index" json:"outcome"`

	Entry   *decimal.Decimal `gorm:"type:numeric(20,10)" json:"entry"`
	Stop    *decimal.Decimal `gorm:"type:numeric(20,10)" json:"stop"`
	Exit    *decimal.Decimal `gorm:"type:numeric(20,10)" json:"exit"`
	Shares  *decimal.Decimal `gorm:"type:numeric(20,10)" json:"shares"`
	Options bool             `gorm:"not null;default:false" json:"options"`

	PnL *decimal.Decimal `gorm:"column:pnl;type:numeric(30,10)" json:"pnl"`
	RR  string           `gorm:"type:varchar(16)" json:"rr"`

	Rules   string `gorm:"type:varchar(8);index" json:"rules"`
	Emotion string `gorm:"type:varchar(20)" json:"emotion"`
	Good    string `gorm:"type:text" json:"good"`
	Improve string `gorm:"type:text" json:"improve"`

	PnLSource     string `gorm:"column:pnl_source;type:varchar(10)" json:"pnlSource"`
	RRSource      string `gorm:"column:rr_source;type:varchar(10)" json:"rrSource"`
	OutcomeSource string `gorm:"type:varchar(10)" json:"outcomeSource"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Trade) TableName() string {
	return "trades"
}
