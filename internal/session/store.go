// Package session holds the dashboard's bearer token.
//
// A Store is the single source of truth for the token: it is read before every
// backend call, written after a successful login and cleared on logout or when
// the backend rejects the token. Stores never expire or refresh tokens.
package session

import (
	"fmt"
	"sync"

	"sms-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenKey is the fixed name the bearer token is persisted under.
const TokenKey = "access_token"

type Store interface {
	// Get returns the current token and whether one is present.
	Get() (string, bool, error)
	// Set replaces the token.
	Set(token string) error
	// Clear removes the token. Clearing an empty store is not an error.
	Clear() error
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	s.token, s.set = token, true
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token, s.set = "", false
	s.mu.Unlock()
	return nil
}

// GormStore persists the token as a row of the session_entries table so it
// survives restarts.
type GormStore struct {
	db  *gorm.DB
	key string
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, key: TokenKey}
}

func (s *GormStore) Get() (string, bool, error) {
	var entries []models.SessionEntry
	if err := s.db.Where("key = ?", s.key).Limit(1).Find(&entries).Error; err != nil {
		return "", false, fmt.Errorf("read session: %w", err)
	}
	if len(entries) == 0 {
		return "", false, nil
	}
	return entries[0].Value, true, nil
}

func (s *GormStore) Set(token string) error {
	entry := models.SessionEntry{Key: s.key, Value: token}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *GormStore) Clear() error {
	if err := s.db.Where("key = ?", s.key).Delete(&models.SessionEntry{}).Error; err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
