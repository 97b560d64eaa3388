package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingError(t *testing.T) {
	req := require.New(t)
	cause := fmt.Errorf("invalid type: chan int")
	err := fmt.Errorf("save: %w", &EncodingError{ParticipantID: "u1", Err: cause})

	req.ErrorIs(err, ErrEncoding)
	req.ErrorIs(err, cause)
	req.NotErrorIs(err, ErrDecoding)
	req.False(IsCacheMiss(err))
	req.EqualError(errors.Unwrap(err), `encode participant "u1": invalid type: chan int`)
}

func TestDecodingError(t *testing.T) {
	req := require.New(t)
	cause := fmt.Errorf("checksum mismatch")
	err := error(&DecodingError{ParticipantID: "u1", Err: cause})

	req.ErrorIs(err, ErrDecoding)
	req.ErrorIs(err, cause)
	req.NotErrorIs(err, ErrEncoding)
	req.True(IsCacheMiss(err))

	var target *DecodingError
	req.True(errors.As(err, &target))
	req.Equal("u1", target.ParticipantID)
}

func TestIsCacheMiss(t *testing.T) {
	req := require.New(t)
	req.True(IsCacheMiss(fmt.Errorf("%w: %q", ErrNotFound, "u1")))
	req.False(IsCacheMiss(fmt.Errorf("disk full")))
	req.False(IsCacheMiss(nil))
}
