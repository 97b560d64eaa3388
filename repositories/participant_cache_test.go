package repositories

import (
	"log/slog"
	"participant-cache/domain"
	"participant-cache/errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openParticipantCache(t *testing.T) ParticipantCacheRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewParticipantCacheRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func Test_Put_Then_Get_Participant(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)
	p := participantFixture("u1")

	entry, err := FromParticipant(p)
	req.NoError(err)
	req.NoError(repository.Put(entry))

	fetched, err := repository.Get("u1")
	req.NoError(err)
	req.Equal(entry, fetched)

	decoded, err := fetched.ToParticipant()
	req.NoError(err)
	req.Equal(p, decoded)
}

func Test_Put_Replaces_Previous_Payload(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)

	first := participantFixture("u1")
	second := participantFixture("u1")
	second.Name = "Bobby"
	second.Attributes = map[string]any{"status": "back"}

	for _, p := range []domain.Participant{first, second} {
		entry, err := FromParticipant(p)
		req.NoError(err)
		req.NoError(repository.Put(entry))
	}

	fetched, err := repository.Get("u1")
	req.NoError(err)
	decoded, err := fetched.ToParticipant()
	req.NoError(err)
	req.Equal(second, decoded)
}

func Test_Get_Unknown_Participant(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)

	_, err := repository.Get("ghost")
	req.ErrorIs(err, errors.ErrNotFound)
	req.True(errors.IsCacheMiss(err))
}

func Test_Delete_Participant(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)

	entry, err := FromParticipant(participantFixture("u1"))
	req.NoError(err)
	req.NoError(repository.Put(entry))

	req.NoError(repository.Delete("u1"))
	_, err = repository.Get("u1")
	req.ErrorIs(err, errors.ErrNotFound)

	// Deleting twice is not an error
	req.NoError(repository.Delete("u1"))
}

func Test_Stored_Empty_Payload_Fails_To_Decode(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)

	req.NoError(repository.Put(ParticipantCacheEntry{ID: "u1"}))

	fetched, err := repository.Get("u1")
	req.NoError(err)
	_, err = fetched.ToParticipant()
	req.ErrorIs(err, errors.ErrDecoding)
}

func Test_Put_Requires_ID(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)

	err := repository.Put(ParticipantCacheEntry{Payload: []byte("x")})
	req.ErrorIs(err, errors.ErrInvalidParticipant)
}

func Test_Entries_Are_Namespaced(t *testing.T) {
	req := require.New(t)
	repository := openParticipantCache(t)

	entry, err := FromParticipant(participantFixture("u1"))
	req.NoError(err)
	req.NoError(repository.Put(entry))

	err = repository.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("participant:u1"))
		return err
	})
	req.NoError(err)
}
