package codec

import (
	"participant-cache/domain"
	"time"
)

func participantFixture() domain.Participant {
	at := time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)
	return domain.Participant{
		ID:           "u1",
		RecordType:   domain.UserRecordType,
		Name:         "Alice",
		Username:     "alice",
		Email:        "alice@example.com",
		AvatarURL:    "https://cdn.example.com/avatars/alice.png",
		Presence:     domain.PresenceOnline,
		LastOnlineAt: at,
		CreatedAt:    at.Add(-72 * time.Hour),
		UpdatedAt:    at.Add(-time.Minute),
		CreatorID:    "u1",
		OwnerID:      "u1",
		Attributes: map[string]any{
			"theme":    "dark",
			"score":    42.5,
			"verified": true,
			"nothing":  nil,
			"tags":     []any{"admin", "beta"},
			"prefs": map[string]any{
				"lang":   "fr",
				"volume": 7.0,
			},
		},
	}
}

func codecs() []Codec {
	return []Codec{Proto{}, Msgpack{}}
}
