package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/termfx/findfx/models"
)

// Store is the search history API over a connected database.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a connected gorm handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to dsn and returns a ready store.
func Open(dsn string, debug bool) (*Store, error) {
	conn, err := Connect(dsn, debug)
	if err != nil {
		return nil, err
	}
	return NewStore(conn), nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// BeginSession creates a new session row and returns it. client is stored as
// a JSON blob; nil is allowed.
func (s *Store) BeginSession(client map[string]any) (*models.Session, error) {
	session := &models.Session{UUID: uuid.NewString()}
	if client != nil {
		blob, err := json.Marshal(client)
		if err != nil {
			return nil, fmt.Errorf("marshaling client info: %w", err)
		}
		session.Client = blob
	}

	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

// CloseSession stamps the session's end time.
func (s *Store) CloseSession(session *models.Session) error {
	if session == nil {
		return nil
	}
	now := time.Now()
	session.EndedAt = &now
	return s.db.Model(session).Update("ended_at", &now).Error
}

// RecordSearch persists one search outcome and bumps the session counter.
func (s *Store) RecordSearch(session *models.Session, search *models.Search) error {
	if session != nil {
		search.SessionID = session.ID
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(search).Error; err != nil {
			return fmt.Errorf("recording search: %w", err)
		}
		if session != nil {
			if err := tx.Model(&models.Session{}).Where("id = ?", session.ID).
				Update("search_count", gorm.Expr("search_count + 1")).Error; err != nil {
				return fmt.Errorf("updating session counter: %w", err)
			}
		}
		return nil
	})
}

// RecentSearches returns the newest limit rows, newest first.
func (s *Store) RecentSearches(limit int) ([]models.Search, error) {
	if limit <= 0 {
		limit = 20
	}
	var searches []models.Search
	err := s.db.Order("created_at DESC, id DESC").Limit(limit).Find(&searches).Error
	if err != nil {
		return nil, fmt.Errorf("loading recent searches: %w", err)
	}
	return searches, nil
}

// PruneHistory deletes everything but the newest keep rows. keep <= 0 wipes
// the whole table.
func (s *Store) PruneHistory(keep int) error {
	if keep <= 0 {
		return s.db.Exec("DELETE FROM searches").Error
	}
	return s.db.Exec(
		"DELETE FROM searches WHERE id NOT IN (SELECT id FROM searches ORDER BY created_at DESC, id DESC LIMIT ?)",
		keep,
	).Error
}
