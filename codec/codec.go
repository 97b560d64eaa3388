// Package codec turns participants into versioned, checksummed payloads and back.
package codec

import (
	"fmt"
	"participant-cache/domain"
	"participant-cache/errors"
	"strings"
)

// Format identifies the codec that produced a payload body.
// Values are persisted, never renumber them.
type Format byte

const (
	FormatProto   Format = 1
	FormatMsgpack Format = 2
)

func (f Format) String() string {
	if c, ok := registry[f]; ok {
		return c.Name()
	}
	return fmt.Sprintf("format(%d)", byte(f))
}

// Codec serializes the full field set of a participant.
type Codec interface {
	Format() Format
	Name() string
	Marshal(p domain.Participant) ([]byte, error)
	Unmarshal(body []byte) (domain.Participant, error)
}

var registry = map[Format]Codec{
	FormatProto:   Proto{},
	FormatMsgpack: Msgpack{},
}

// Default is the codec used when none is configured.
func Default() Codec { return Proto{} }

func ByFormat(f Format) (Codec, error) {
	c, ok := registry[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, byte(f))
	}
	return c, nil
}

// ByName resolves a configured codec name such as "proto" or "msgpack".
func ByName(name string) (Codec, error) {
	for _, c := range registry {
		if strings.EqualFold(c.Name(), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, name)
}

// Encode marshals p with c and seals the body into an envelope.
func Encode(c Codec, p domain.Participant) ([]byte, error) {
	body, err := c.Marshal(p)
	if err != nil {
		return nil, err
	}
	return Seal(c.Format(), body), nil
}

// Decode opens the envelope and hands the body to the codec named in its header.
func Decode(payload []byte) (domain.Participant, Format, error) {
	format, body, err := Open(payload)
	if err != nil {
		return domain.Participant{}, 0, err
	}
	c, err := ByFormat(format)
	if err != nil {
		return domain.Participant{}, format, err
	}
	p, err := c.Unmarshal(body)
	if err != nil {
		return domain.Participant{}, format, fmt.Errorf("%s body: %w", c.Name(), err)
	}
	return p, format, nil
}
