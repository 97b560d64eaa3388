package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"participant-cache/errors"
	"participant-cache/repositories"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	DriverBadger = "badger"
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers lists every supported CACHE_DRIVER value.
var Drivers = []string{DriverBadger, DriverBolt, DriverSQLite, DriverMemory}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open returns the participant cache backed by driver.
// For badger path is a directory, for bolt and sqlite it is a file.
// The caller owns the returned closer.
func Open(driver, path string, log *slog.Logger) (repositories.IParticipantCacheRepository, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverBadger:
		db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		return repositories.NewParticipantCacheRepository(db, log), db, nil
	case DriverBolt:
		if err := ensureParent(path); err != nil {
			return nil, nil, err
		}
		cache, err := OpenBoltParticipantCache(path, log)
		if err != nil {
			return nil, nil, err
		}
		return cache, cache, nil
	case DriverSQLite:
		if err := ensureParent(path); err != nil {
			return nil, nil, err
		}
		cache, err := OpenSQLiteParticipantCache(path, log)
		if err != nil {
			return nil, nil, err
		}
		return cache, cache, nil
	case DriverMemory:
		return NewMemoryParticipantCache(), closerFunc(func() error { return nil }), nil
	}
	return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownDriver, driver)
}

func ensureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	return nil
}
