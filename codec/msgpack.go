package codec

import (
	"bytes"
	"fmt"
	"participant-cache/domain"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack writes participants as MessagePack maps with sorted keys.
type Msgpack struct{}

type msgpackTime struct {
	Seconds int64 `msgpack:"s"`
	Nanos   int32 `msgpack:"n"`
}

type msgpackParticipant struct {
	ID           string         `msgpack:"id"`
	RecordType   string         `msgpack:"record_type,omitempty"`
	Name         string         `msgpack:"name,omitempty"`
	Username     string         `msgpack:"username,omitempty"`
	Email        string         `msgpack:"email,omitempty"`
	AvatarURL    string         `msgpack:"avatar_url,omitempty"`
	Presence     int64          `msgpack:"presence,omitempty"`
	LastOnlineAt *msgpackTime   `msgpack:"last_online_at,omitempty"`
	CreatedAt    *msgpackTime   `msgpack:"created_at,omitempty"`
	UpdatedAt    *msgpackTime   `msgpack:"updated_at,omitempty"`
	CreatorID    string         `msgpack:"creator_id,omitempty"`
	OwnerID      string         `msgpack:"owner_id,omitempty"`
	Attributes   map[string]any `msgpack:"attributes,omitempty"`
}

func (Msgpack) Format() Format { return FormatMsgpack }

func (Msgpack) Name() string { return "msgpack" }

func (Msgpack) Marshal(p domain.Participant) ([]byte, error) {
	attrs, err := normalizeAttributes(p.Attributes)
	if err != nil {
		return nil, err
	}
	mp := msgpackParticipant{
		ID:           p.ID,
		RecordType:   p.RecordType,
		Name:         p.Name,
		Username:     p.Username,
		Email:        p.Email,
		AvatarURL:    p.AvatarURL,
		Presence:     int64(p.Presence),
		LastOnlineAt: fromTime(p.LastOnlineAt),
		CreatedAt:    fromTime(p.CreatedAt),
		UpdatedAt:    fromTime(p.UpdatedAt),
		CreatorID:    p.CreatorID,
		OwnerID:      p.OwnerID,
		Attributes:   attrs,
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&mp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack) Unmarshal(body []byte) (domain.Participant, error) {
	r := bytes.NewReader(body)
	var mp msgpackParticipant
	if err := msgpack.NewDecoder(r).Decode(&mp); err != nil {
		return domain.Participant{}, err
	}
	if r.Len() != 0 {
		return domain.Participant{}, fmt.Errorf("%d trailing bytes", r.Len())
	}
	return domain.Participant{
		ID:           mp.ID,
		RecordType:   mp.RecordType,
		Name:         mp.Name,
		Username:     mp.Username,
		Email:        mp.Email,
		AvatarURL:    mp.AvatarURL,
		Presence:     domain.Presence(mp.Presence),
		LastOnlineAt: toTime(mp.LastOnlineAt),
		CreatedAt:    toTime(mp.CreatedAt),
		UpdatedAt:    toTime(mp.UpdatedAt),
		CreatorID:    mp.CreatorID,
		OwnerID:      mp.OwnerID,
		Attributes:   mp.Attributes,
	}, nil
}

func fromTime(t time.Time) *msgpackTime {
	if t.IsZero() {
		return nil
	}
	return &msgpackTime{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

func toTime(t *msgpackTime) time.Time {
	if t == nil {
		return time.Time{}
	}
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}
