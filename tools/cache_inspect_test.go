package main

import (
	"participant-cache/codec"
	"participant-cache/domain"
	"participant-cache/repositories"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParticipantMapper(t *testing.T) {
	t.Run("should describe a readable entry", func(t *testing.T) {
		req := require.New(t)
		updated := time.Date(2024, 6, 1, 9, 30, 15, 0, time.UTC)
		entry, err := repositories.FromParticipantWith(codec.Msgpack{}, domain.Participant{
			ID:        "u1",
			Name:      "Alice",
			UpdatedAt: updated,
		})
		req.NoError(err)

		row := ParticipantMapper(string(repositories.ParticipantKey("u1")), entry.Payload)

		req.Equal("participant:u1", row.Key)
		req.Equal("participant", row.Namespace)
		req.Equal("u1", row.EntityID)
		req.Equal("MSGPACK", row.Type)
		req.Equal("Alice", row.Detail)
		req.Equal(updated.Format("15:04:05"), row.Timestamp)
	})

	t.Run("should show the decoding error of a broken entry", func(t *testing.T) {
		req := require.New(t)

		row := ParticipantMapper("participant:u2", []byte{0x01})

		req.Equal("u2", row.EntityID)
		req.Equal("?", row.Type)
		req.NotEmpty(row.Detail)
		req.Equal("--:--:--", row.Timestamp)
	})
}

func TestInspectRow(t *testing.T) {
	req := require.New(t)
	entry, err := repositories.FromParticipant(domain.Participant{ID: "u3", Name: "Carol"})
	req.NoError(err)

	row := inspectRow("participant:u3", entry.Payload)

	req.Equal("u3", row[0])
	req.Equal("proto", row[1])
	req.Equal("Carol", row[3])
}
