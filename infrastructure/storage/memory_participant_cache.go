package storage

import (
	"fmt"
	"participant-cache/errors"
	"participant-cache/repositories"

	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryParticipantCache is a process-local store, mostly useful in tests
// and for clients that do not want anything on disk.
type MemoryParticipantCache struct {
	entries *xsync.MapOf[string, []byte]
}

func NewMemoryParticipantCache() *MemoryParticipantCache {
	return &MemoryParticipantCache{entries: xsync.NewMapOf[string, []byte]()}
}

// Put copies the payload so the caller may reuse its buffer.
func (m *MemoryParticipantCache) Put(entry repositories.ParticipantCacheEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: empty id", errors.ErrInvalidParticipant)
	}
	m.entries.Store(entry.ID, append([]byte{}, entry.Payload...))
	return nil
}

func (m *MemoryParticipantCache) Get(id string) (repositories.ParticipantCacheEntry, error) {
	payload, ok := m.entries.Load(id)
	if !ok {
		return repositories.ParticipantCacheEntry{}, fmt.Errorf("%w: %q", errors.ErrNotFound, id)
	}
	return repositories.ParticipantCacheEntry{ID: id, Payload: append([]byte{}, payload...)}, nil
}

func (m *MemoryParticipantCache) Delete(id string) error {
	m.entries.Delete(id)
	return nil
}

// Len reports the number of cached participants.
func (m *MemoryParticipantCache) Len() int {
	return m.entries.Size()
}
