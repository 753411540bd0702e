package models

import (
	"time"

	"gorm.io/datatypes"
)

// Checklist stores the checked/unchecked state of the pre-market and
// pre-trade checklists for one calendar day. Data maps group name to a
// map of item index to checked state, e.g. {"news": {"0": true}}.
type Checklist struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID string `gorm:"type:varchar(40);not null;uniqueIndex:idx_checklist_user_date" json:"-"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_checklist_user_date" json:"date"`

	Data datatypes.JSON `gorm:"not null" json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Checklist) TableName() string {
	return "checklists"
}
