package codec

import (
	"fmt"
	"participant-cache/domain"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Field numbers of the participant message. Persisted, never reuse one.
const (
	fieldID           protowire.Number = 1
	fieldRecordType   protowire.Number = 2
	fieldName         protowire.Number = 3
	fieldUsername     protowire.Number = 4
	fieldEmail        protowire.Number = 5
	fieldAvatarURL    protowire.Number = 6
	fieldPresence     protowire.Number = 7
	fieldLastOnlineAt protowire.Number = 8
	fieldCreatedAt    protowire.Number = 9
	fieldUpdatedAt    protowire.Number = 10
	fieldCreatorID    protowire.Number = 11
	fieldOwnerID      protowire.Number = 12
	fieldAttributes   protowire.Number = 13
)

var deterministic = proto.MarshalOptions{Deterministic: true}

// Proto writes participants in protobuf wire format.
// Zero-valued fields are omitted and unknown fields are skipped on read.
type Proto struct{}

func (Proto) Format() Format { return FormatProto }

func (Proto) Name() string { return "proto" }

func (Proto) Marshal(p domain.Participant) ([]byte, error) {
	var b []byte
	var err error

	strs := []struct {
		num   protowire.Number
		name  string
		value string
	}{
		{fieldID, "id", p.ID},
		{fieldRecordType, "record_type", p.RecordType},
		{fieldName, "name", p.Name},
		{fieldUsername, "username", p.Username},
		{fieldEmail, "email", p.Email},
		{fieldAvatarURL, "avatar_url", p.AvatarURL},
		{fieldCreatorID, "creator_id", p.CreatorID},
		{fieldOwnerID, "owner_id", p.OwnerID},
	}
	for _, s := range strs {
		if s.value == "" {
			continue
		}
		if !utf8.ValidString(s.value) {
			return nil, fmt.Errorf("%s: invalid UTF-8", s.name)
		}
		b = protowire.AppendTag(b, s.num, protowire.BytesType)
		b = protowire.AppendString(b, s.value)
	}

	if p.Presence != domain.PresenceUnknown {
		b = protowire.AppendTag(b, fieldPresence, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(p.Presence)))
	}

	if b, err = appendTime(b, fieldLastOnlineAt, p.LastOnlineAt); err != nil {
		return nil, fmt.Errorf("last_online_at: %w", err)
	}
	if b, err = appendTime(b, fieldCreatedAt, p.CreatedAt); err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	if b, err = appendTime(b, fieldUpdatedAt, p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}

	attrs, err := attributesStruct(p.Attributes)
	if err != nil {
		return nil, err
	}
	if attrs != nil {
		raw, err := deterministic.Marshal(attrs)
		if err != nil {
			return nil, fmt.Errorf("attributes: %w", err)
		}
		b = protowire.AppendTag(b, fieldAttributes, protowire.BytesType)
		b = protowire.AppendBytes(b, raw)
	}
	return b, nil
}

func (Proto) Unmarshal(b []byte) (domain.Participant, error) {
	var p domain.Participant
	strs := map[protowire.Number]*string{
		fieldID:         &p.ID,
		fieldRecordType: &p.RecordType,
		fieldName:       &p.Name,
		fieldUsername:   &p.Username,
		fieldEmail:      &p.Email,
		fieldAvatarURL:  &p.AvatarURL,
		fieldCreatorID:  &p.CreatorID,
		fieldOwnerID:    &p.OwnerID,
	}
	times := map[protowire.Number]*time.Time{
		fieldLastOnlineAt: &p.LastOnlineAt,
		fieldCreatedAt:    &p.CreatedAt,
		fieldUpdatedAt:    &p.UpdatedAt,
	}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.Participant{}, protowire.ParseError(n)
		}
		b = b[n:]

		dst, isString := strs[num]
		ts, isTime := times[num]
		switch {
		case isString && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return domain.Participant{}, fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
			}
			if !utf8.ValidString(v) {
				return domain.Participant{}, fmt.Errorf("field %d: invalid UTF-8", num)
			}
			*dst = v
			n = m
		case isTime && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return domain.Participant{}, fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
			}
			t, err := unmarshalTime(v)
			if err != nil {
				return domain.Participant{}, fmt.Errorf("field %d: %w", num, err)
			}
			*ts = t
			n = m
		case num == fieldPresence && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return domain.Participant{}, fmt.Errorf("presence: %w", protowire.ParseError(m))
			}
			p.Presence = domain.Presence(int64(v))
			n = m
		case num == fieldAttributes && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return domain.Participant{}, fmt.Errorf("attributes: %w", protowire.ParseError(m))
			}
			var s structpb.Struct
			if err := proto.Unmarshal(v, &s); err != nil {
				return domain.Participant{}, fmt.Errorf("attributes: %w", err)
			}
			p.Attributes = s.AsMap()
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return domain.Participant{}, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return p, nil
}

func appendTime(b []byte, num protowire.Number, t time.Time) ([]byte, error) {
	if t.IsZero() {
		return b, nil
	}
	ts := timestamppb.New(t)
	if err := ts.CheckValid(); err != nil {
		return nil, err
	}
	raw, err := deterministic.Marshal(ts)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw), nil
}

func unmarshalTime(raw []byte) (time.Time, error) {
	var ts timestamppb.Timestamp
	if err := proto.Unmarshal(raw, &ts); err != nil {
		return time.Time{}, err
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}
