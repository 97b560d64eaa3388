package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParticipant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Participant
		wantErr bool
	}{
		{"minimal", Participant{ID: "u1"}, false},
		{"complete", Participant{
			ID:        "u1",
			Email:     "alice@example.com",
			AvatarURL: "https://cdn.example.com/a.png",
			Presence:  PresenceAway,
		}, false},
		{"missing id", Participant{Name: "Alice"}, true},
		{"bad email", Participant{ID: "u1", Email: "alice"}, true},
		{"bad avatar", Participant{ID: "u1", AvatarURL: "not a url"}, true},
		{"bad presence", Participant{ID: "u1", Presence: Presence(12)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPresence_String_Parse(t *testing.T) {
	req := require.New(t)
	for _, p := range []Presence{PresenceUnknown, PresenceOffline, PresenceOnline, PresenceAway} {
		parsed, err := ParsePresence(p.String())
		req.NoError(err)
		req.Equal(p, parsed)
	}

	parsed, err := ParsePresence(" Online ")
	req.NoError(err)
	req.Equal(PresenceOnline, parsed)

	parsed, err = ParsePresence("")
	req.NoError(err)
	req.Equal(PresenceUnknown, parsed)

	_, err = ParsePresence("busy")
	req.Error(err)
	req.Equal("unknown", Presence(-1).String())
}

func TestParticipant_DisplayName(t *testing.T) {
	req := require.New(t)
	req.Equal("Alice", Participant{ID: "u1", Name: "Alice", Username: "alice"}.DisplayName())
	req.Equal("alice", Participant{ID: "u1", Username: "alice"}.DisplayName())
	req.Equal("u1", Participant{ID: "u1"}.DisplayName())
}
