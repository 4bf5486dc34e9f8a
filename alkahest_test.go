package alkahest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest"
	"github.com/zakarumych/alkahest/codec"
	"github.com/zakarumych/alkahest/errs"
)

func TestSerializeIntoDeserializeRoundTrip(t *testing.T) {
	c := codec.Tuple2(codec.Str, codec.Seq(codec.U32))
	v := codec.Pair[string, []uint32]{A: "alkahest", B: []uint32{1, 2, 3}}

	buf := make([]byte, alkahest.SerializedSize(c, v))
	n, err := alkahest.SerializeInto(c, v, buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	got, err := alkahest.Deserialize(c, buf)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestSerializeIntoRejectsUndersizedBuffer(t *testing.T) {
	c := codec.Str
	v := "too big for this buffer"

	_, err := alkahest.SerializeInto(c, v, make([]byte, 1))
	require.Error(t, err)

	var tooSmall *errs.BufferTooSmall
	require.ErrorAs(t, err, &tooSmall)
}

func TestSerializeToVecGrowsAndAppends(t *testing.T) {
	c := codec.U32
	var dst []byte

	dst, err := alkahest.SerializeToVec(c, uint32(1), dst)
	require.NoError(t, err)
	dst, err = alkahest.SerializeToVec(c, uint32(2), dst)
	require.NoError(t, err)

	require.Equal(t, 8, len(dst))

	first, err := alkahest.Deserialize(c, dst[0:4])
	require.NoError(t, err)
	require.Equal(t, uint32(1), first)

	second, err := alkahest.Deserialize(c, dst[4:8])
	require.NoError(t, err)
	require.Equal(t, uint32(2), second)
}

func TestSerializeToVecPreservesExistingPrefix(t *testing.T) {
	c := codec.U8
	dst := []byte{0xAA, 0xBB}

	dst, err := alkahest.SerializeToVec(c, uint8(7), dst)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 7}, dst)
}

func TestSerializeUnchecked(t *testing.T) {
	c := codec.U16
	buf := make([]byte, alkahest.SerializedSize(c, uint16(42)))
	n := alkahest.SerializeUnchecked(c, uint16(42), buf)
	require.Equal(t, len(buf), n)

	got, err := alkahest.Deserialize(c, buf)
	require.NoError(t, err)
	require.Equal(t, uint16(42), got)
}

func TestSerializeUncheckedPanicsOnShortBuffer(t *testing.T) {
	c := codec.U32
	require.Panics(t, func() {
		alkahest.SerializeUnchecked(c, uint32(1), make([]byte, 0))
	})
}

func TestReadIsAnAliasForDeserialize(t *testing.T) {
	c := codec.Bytes
	v := []byte{1, 2, 3, 4}
	buf := make([]byte, alkahest.SerializedSize(c, v))
	_, err := alkahest.SerializeInto(c, v, buf)
	require.NoError(t, err)

	got, err := alkahest.Read(c, buf)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestAccessReturnsAReaderOverTheBuffer(t *testing.T) {
	c := codec.U64
	buf := make([]byte, alkahest.SerializedSize(c, uint64(0x0102030405060708)))
	_, err := alkahest.SerializeInto(c, uint64(0x0102030405060708), buf)
	require.NoError(t, err)

	r := alkahest.Access(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), got)
}

func TestDeserializeUnvalidatedSkipsChecks(t *testing.T) {
	c := codec.Str
	v := "trusted payload"
	buf := make([]byte, alkahest.SerializedSize(c, v))
	_, err := alkahest.SerializeInto(c, v, buf)
	require.NoError(t, err)

	got := alkahest.DeserializeUnvalidated(c, buf)
	require.Equal(t, v, got)
}
