package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferTooSmallUnwraps(t *testing.T) {
	err := &BufferTooSmall{Required: 42}
	require.True(t, errors.Is(err, ErrBufferTooSmall))
	require.Contains(t, err.Error(), "42")
}

func TestInvalidEncodingUnwraps(t *testing.T) {
	err := &InvalidEncoding{At: 7, What: "enum tag out of range"}
	require.True(t, errors.Is(err, ErrInvalidEncoding))
	require.Contains(t, err.Error(), "enum tag out of range")
	require.Contains(t, err.Error(), "7")
}

func TestSizeOverflowUnwraps(t *testing.T) {
	err := &SizeOverflow{Value: 1 << 40, Width: 4}
	require.True(t, errors.Is(err, ErrSizeOverflow))
}
