package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GamePlan holds the pre-market plan for one calendar day.
type GamePlan struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID string `gorm:"type:varchar(40);not null;uniqueIndex:idx_gameplan_user_date" json:"-"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_gameplan_user_date" json:"date"`

	Bias    string           `gorm:"type:varchar(20)" json:"bias"`
	Account *decimal.Decimal `gorm:"type:numeric(30,10)" json:"account"`
	MaxLoss *decimal.Decimal `gorm:"column:maxloss;type:numeric(30,10)" json:"maxloss"`
	Level   string           `gorm:"type:varchar(120)" json:"level"`
	Setups  string           `gorm:"type:text" json:"setups"`
	Notes   string           `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (GamePlan) TableName() string {
	return "game_plans"
}
