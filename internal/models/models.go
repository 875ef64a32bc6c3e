package models

import (
	"time"
)

// SessionEntry is one named value of the persisted dashboard session.
// The bearer token lives under the "access_token" key.
type SessionEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SessionEntry) TableName() string {
	return "session_entries"
}
