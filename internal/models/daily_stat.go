package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStat is a per-day aggregate rebuilt periodically from the trade log.
// It backs the daily breakdown view so the table survives restarts; the
// live engine remains the source of truth.
type DailyStat struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID string `gorm:"type:varchar(40);not null;uniqueIndex:idx_daily_stat_user_date" json:"-"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_stat_user_date" json:"date"`

	TradesCount int `gorm:"not null;default:0" json:"trades"`
	WinCount    int `gorm:"not null;default:0" json:"wins"`
	LossCount   int `gorm:"not null;default:0" json:"losses"`

	PnL decimal.Decimal `gorm:"column:pnl;type:numeric(30,10);not null;default:0" json:"pnl"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (DailyStat) TableName() string {
	return "daily_stats"
}
