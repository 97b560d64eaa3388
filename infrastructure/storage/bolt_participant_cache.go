package storage

import (
	"fmt"
	"log/slog"
	"participant-cache/errors"
	"participant-cache/repositories"
	"time"

	"go.etcd.io/bbolt"
)

var participantsBucket = []byte("participants")

// BoltParticipantCache keeps entries in a single bbolt bucket keyed by id.
type BoltParticipantCache struct {
	db  *bbolt.DB
	log *slog.Logger
}

// OpenBoltParticipantCache opens or creates the database file at path.
func OpenBoltParticipantCache(path string, log *slog.Logger) (*BoltParticipantCache, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(participantsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltParticipantCache{db: db, log: log}, nil
}

func (b *BoltParticipantCache) Close() error {
	return b.db.Close()
}

func (b *BoltParticipantCache) Put(entry repositories.ParticipantCacheEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: empty id", errors.ErrInvalidParticipant)
	}
	err := b.db.Update(func(tx *bbolt.Tx) error {
		// bbolt stores nil values as empty, keep the key present either way
		payload := entry.Payload
		if payload == nil {
			payload = []byte{}
		}
		return tx.Bucket(participantsBucket).Put([]byte(entry.ID), payload)
	})
	if err != nil {
		return fmt.Errorf("store participant %q: %w", entry.ID, err)
	}
	b.log.Debug("Participant cached", "participant_id", entry.ID, "size", len(entry.Payload))
	return nil
}

// Get copies the value, bbolt memory is only valid inside the transaction.
func (b *BoltParticipantCache) Get(id string) (repositories.ParticipantCacheEntry, error) {
	var payload []byte
	found := false
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(participantsBucket).Get([]byte(id))
		if v == nil {
			return nil
		}
		found = true
		payload = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return repositories.ParticipantCacheEntry{}, fmt.Errorf("load participant %q: %w", id, err)
	}
	if !found {
		return repositories.ParticipantCacheEntry{}, fmt.Errorf("%w: %q", errors.ErrNotFound, id)
	}
	return repositories.ParticipantCacheEntry{ID: id, Payload: payload}, nil
}

func (b *BoltParticipantCache) Delete(id string) error {
	if id == "" {
		return nil
	}
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(participantsBucket).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete participant %q: %w", id, err)
	}
	return nil
}
