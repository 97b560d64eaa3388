package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Envelope layout:
//
//	[0:2]   magic "PC"
//	[2]     envelope version
//	[3]     codec format
//	[4:n]   codec body
//	[n:n+8] xxhash64 of [0:n], big endian
const (
	envelopeVersion byte = 1
	headerSize           = 4
	checksumSize         = 8
)

var magic = [2]byte{'P', 'C'}

var (
	ErrEmptyPayload       = fmt.Errorf("empty payload")
	ErrTruncatedPayload   = fmt.Errorf("truncated payload")
	ErrBadMagic           = fmt.Errorf("payload is not a participant snapshot")
	ErrUnsupportedVersion = fmt.Errorf("unsupported payload version")
	ErrChecksumMismatch   = fmt.Errorf("payload checksum mismatch")
	ErrUnknownFormat      = fmt.Errorf("unknown payload format")
)

// Seal wraps body in a header and appends its checksum.
func Seal(format Format, body []byte) []byte {
	out := make([]byte, 0, headerSize+len(body)+checksumSize)
	out = append(out, magic[0], magic[1], envelopeVersion, byte(format))
	out = append(out, body...)
	return binary.BigEndian.AppendUint64(out, xxhash.Sum64(out))
}

// Open validates the envelope and returns the format and body it carries.
// The returned body aliases payload.
func Open(payload []byte) (Format, []byte, error) {
	switch {
	case len(payload) == 0:
		return 0, nil, ErrEmptyPayload
	case len(payload) < headerSize+checksumSize:
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrTruncatedPayload, len(payload))
	case payload[0] != magic[0] || payload[1] != magic[1]:
		return 0, nil, ErrBadMagic
	case payload[2] != envelopeVersion:
		return 0, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, payload[2])
	}

	n := len(payload) - checksumSize
	if xxhash.Sum64(payload[:n]) != binary.BigEndian.Uint64(payload[n:]) {
		return 0, nil, ErrChecksumMismatch
	}
	return Format(payload[3]), payload[headerSize:n], nil
}
