package models

import "time"

// Day classification values assigned after observing the open.
const (
	DayTypeTrend    = "trend"
	DayTypeChop     = "chop"
	DayTypeReversal = "reversal"
)

// DayTypeEntry records the day classification for one calendar day.
type DayTypeEntry struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID string `gorm:"type:varchar(40);not null;uniqueIndex:idx_daytype_user_date" json:"-"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_daytype_user_date" json:"date"`

	Type string `gorm:"type:varchar(12);not null" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (DayTypeEntry) TableName() string {
	return "day_types"
}
