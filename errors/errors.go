package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = fmt.Errorf("participant not found in cache")
	ErrEncoding           = fmt.Errorf("participant encoding failed")
	ErrDecoding           = fmt.Errorf("participant decoding failed")
	ErrInvalidParticipant = fmt.Errorf("invalid participant")
	ErrUnknownDriver      = fmt.Errorf("unknown cache driver")
	ErrUnknownCodec       = fmt.Errorf("unknown cache codec")
)

// EncodingError reports a participant that could not be fully serialized.
type EncodingError struct {
	ParticipantID string
	Err           error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode participant %q: %v", e.ParticipantID, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// DecodingError reports a payload that holds no valid participant state.
// Callers should treat it as a cache miss.
type DecodingError struct {
	ParticipantID string
	Err           error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode participant %q: %v", e.ParticipantID, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

func (e *DecodingError) Is(target error) bool { return target == ErrDecoding }

// IsCacheMiss reports whether err means no usable cached participant exists.
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrDecoding)
}
