//go:generate go run go.uber.org/mock/mockgen -source=participant_cache.go -destination=../mocks/mock_participant_cache_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"participant-cache/errors"

	"github.com/dgraph-io/badger/v4"
)

// ParticipantKeyPrefix namespaces cache entries inside a shared Badger database.
const ParticipantKeyPrefix = "participant:"

// IParticipantCacheRepository is the persistent store for cache entries.
// Put is an upsert, Get returns errors.ErrNotFound for unknown ids and
// deleting an unknown id is not an error.
type IParticipantCacheRepository interface {
	Put(entry ParticipantCacheEntry) error
	Get(id string) (ParticipantCacheEntry, error)
	Delete(id string) error
}

type ParticipantCacheRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewParticipantCacheRepository(db *badger.DB, log *slog.Logger) ParticipantCacheRepository {
	return ParticipantCacheRepository{db: db, log: log}
}

func ParticipantKey(id string) []byte {
	return []byte(ParticipantKeyPrefix + id)
}

// Put stores the entry under "participant:{id}", replacing any previous payload.
func (r ParticipantCacheRepository) Put(entry ParticipantCacheEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: empty id", errors.ErrInvalidParticipant)
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ParticipantKey(entry.ID), entry.Payload)
	})
	if err != nil {
		return fmt.Errorf("store participant %q: %w", entry.ID, err)
	}
	r.log.Debug("Participant cached", "participant_id", entry.ID, "size", len(entry.Payload))
	return nil
}

// Get copies the stored payload out of the transaction.
func (r ParticipantCacheRepository) Get(id string) (ParticipantCacheEntry, error) {
	var payload []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ParticipantKey(id))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return ParticipantCacheEntry{}, fmt.Errorf("%w: %q", errors.ErrNotFound, id)
	case err != nil:
		return ParticipantCacheEntry{}, fmt.Errorf("load participant %q: %w", id, err)
	}
	return ParticipantCacheEntry{ID: id, Payload: payload}, nil
}

func (r ParticipantCacheRepository) Delete(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(ParticipantKey(id))
	})
	if err != nil {
		return fmt.Errorf("delete participant %q: %w", id, err)
	}
	return nil
}
