// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// UserRecordType is the record kind of a regular chat user.
const UserRecordType = "user"

var validate = validator.New()

type Presence int

const (
	PresenceUnknown Presence = iota
	PresenceOffline
	PresenceOnline
	PresenceAway
)

func (p Presence) String() string {
	switch p {
	case PresenceOffline:
		return "offline"
	case PresenceOnline:
		return "online"
	case PresenceAway:
		return "away"
	default:
		return "unknown"
	}
}

// ParsePresence is the inverse of Presence.String.
func ParsePresence(s string) (Presence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return PresenceUnknown, nil
	case "offline":
		return PresenceOffline, nil
	case "online":
		return PresenceOnline, nil
	case "away":
		return PresenceAway, nil
	}
	return PresenceUnknown, fmt.Errorf("unknown presence %q", s)
}

// Participant describes one chat participant's profile.
// Attribute values are JSON-like: nil, bool, numbers, string, []any and
// map[string]any.
type Participant struct {
	ID           string `validate:"required"`
	RecordType   string
	Name         string
	Username     string
	Email        string   `validate:"omitempty,email"`
	AvatarURL    string   `validate:"omitempty,url"`
	Presence     Presence `validate:"gte=0,lte=3"`
	LastOnlineAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatorID    string
	OwnerID      string
	Attributes   map[string]any
}

// Validate checks the business rules a participant must satisfy before it
// is cached.
func (p Participant) Validate() error {
	return validate.Struct(p)
}

// DisplayName falls back to the username, then the ID.
func (p Participant) DisplayName() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Username != "":
		return p.Username
	default:
		return p.ID
	}
}
