//go:build fixed8

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest"
	"github.com/zakarumych/alkahest/codec"
)

// Exercises the overflow-detection property end to end: with an 8-bit
// address word, a sequence of length >= 2^8 cannot be represented and must
// fail with SizeOverflow rather than writing a truncated length. Only
// compiled when the module is built with -tags fixed8.
func TestSeqOverflowsOneByteAddressWidth(t *testing.T) {
	c := codec.Seq(codec.U8)
	v := make([]uint8, 256)

	buf := make([]byte, 10000)
	_, err := alkahest.SerializeInto(c, v, buf)
	require.Error(t, err)
}
