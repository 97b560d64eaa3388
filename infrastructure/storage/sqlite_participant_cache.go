package storage

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"participant-cache/errors"
	"participant-cache/repositories"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS participant_cache (
	id      TEXT PRIMARY KEY NOT NULL,
	payload BLOB NOT NULL
)`

// SQLiteParticipantCache keeps one row per participant id.
type SQLiteParticipantCache struct {
	sqlDB *sql.DB
	log   *slog.Logger
}

// OpenSQLiteParticipantCache opens the database file at path and creates the table.
func OpenSQLiteParticipantCache(path string, log *slog.Logger) (*SQLiteParticipantCache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Writers queue on a single connection
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create participant_cache table: %w", err)
	}
	return &SQLiteParticipantCache{sqlDB: sqlDB, log: log}, nil
}

func (s *SQLiteParticipantCache) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteParticipantCache) Put(entry repositories.ParticipantCacheEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: empty id", errors.ErrInvalidParticipant)
	}
	payload := entry.Payload
	if payload == nil {
		payload = []byte{}
	}
	_, err := s.sqlDB.Exec(
		`INSERT INTO participant_cache (id, payload) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`,
		entry.ID, payload,
	)
	if err != nil {
		return fmt.Errorf("store participant %q: %w", entry.ID, err)
	}
	s.log.Debug("Participant cached", "participant_id", entry.ID, "size", len(entry.Payload))
	return nil
}

func (s *SQLiteParticipantCache) Get(id string) (repositories.ParticipantCacheEntry, error) {
	var payload []byte
	err := s.sqlDB.QueryRow(`SELECT payload FROM participant_cache WHERE id = ?`, id).Scan(&payload)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return repositories.ParticipantCacheEntry{}, fmt.Errorf("%w: %q", errors.ErrNotFound, id)
	case err != nil:
		return repositories.ParticipantCacheEntry{}, fmt.Errorf("load participant %q: %w", id, err)
	}
	return repositories.ParticipantCacheEntry{ID: id, Payload: payload}, nil
}

func (s *SQLiteParticipantCache) Delete(id string) error {
	if _, err := s.sqlDB.Exec(`DELETE FROM participant_cache WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete participant %q: %w", id, err)
	}
	return nil
}
