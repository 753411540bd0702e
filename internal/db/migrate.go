package db

import (
	"spytracker/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Trade{},
		&models.GamePlan{},
		&models.Checklist{},
		&models.DayTypeEntry{},
		&models.DailyStat{},
	)
}
