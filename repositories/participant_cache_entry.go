package repositories

import (
	"fmt"
	"participant-cache/codec"
	"participant-cache/domain"
	"participant-cache/errors"
)

// ParticipantCacheEntry is the persisted form of one cached participant.
// Payload is opaque to every store, only ToParticipant gives it meaning.
type ParticipantCacheEntry struct {
	ID      string
	Payload []byte
}

// FromParticipant snapshots p with the default codec.
func FromParticipant(p domain.Participant) (ParticipantCacheEntry, error) {
	return FromParticipantWith(codec.Default(), p)
}

// FromParticipantWith snapshots every field of p using c.
func FromParticipantWith(c codec.Codec, p domain.Participant) (ParticipantCacheEntry, error) {
	if p.ID == "" {
		return ParticipantCacheEntry{}, fmt.Errorf("%w: empty id", errors.ErrInvalidParticipant)
	}
	payload, err := codec.Encode(c, p)
	if err != nil {
		return ParticipantCacheEntry{}, &errors.EncodingError{ParticipantID: p.ID, Err: err}
	}
	return ParticipantCacheEntry{ID: p.ID, Payload: payload}, nil
}

// ToParticipant rebuilds the participant held in the payload.
// On failure it returns a *errors.DecodingError and the zero Participant.
func (e ParticipantCacheEntry) ToParticipant() (domain.Participant, error) {
	p, _, err := codec.Decode(e.Payload)
	if err != nil {
		return domain.Participant{}, &errors.DecodingError{ParticipantID: e.ID, Err: err}
	}
	if p.ID != e.ID {
		return domain.Participant{}, &errors.DecodingError{
			ParticipantID: e.ID,
			Err:           fmt.Errorf("payload belongs to participant %q", p.ID),
		}
	}
	return p, nil
}

// Format reports which codec produced the payload, without decoding the body.
func (e ParticipantCacheEntry) Format() (codec.Format, error) {
	f, _, err := codec.Open(e.Payload)
	if err != nil {
		return 0, &errors.DecodingError{ParticipantID: e.ID, Err: err}
	}
	return f, nil
}
