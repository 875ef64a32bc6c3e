package database

import (
	"fmt"

	"sms-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CopySessions copies every session entry from src into dst in one
// transaction. Entries already present in dst are overwritten.
func CopySessions(src, dst *gorm.DB) (int, error) {
	var entries []models.SessionEntry
	if err := src.Find(&entries).Error; err != nil {
		return 0, fmt.Errorf("read session entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	err := dst.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entries).Error
	})
	if err != nil {
		return 0, fmt.Errorf("write session entries: %w", err)
	}
	return len(entries), nil
}
