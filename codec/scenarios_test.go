package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest/codec"
	"github.com/zakarumych/alkahest/wire"
)

// These mirror the concrete end-to-end scenarios from the wire format
// description (W=4, little-endian), byte for byte.

func TestScenarioS1SingleU32(t *testing.T) {
	buf := make([]byte, 4)
	w := wire.NewWriter(buf)
	require.NoError(t, codec.U32.SerializeInto(w, 0, 0x01020304))
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	r := wire.NewReader(buf)
	v, err := codec.U32.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v)
}

func TestScenarioS2OptionPair(t *testing.T) {
	c := codec.Tuple2(codec.Option(codec.U32), codec.Option(codec.U32))
	v := codec.Pair[codec.Optional[uint32], codec.Optional[uint32]]{
		A: codec.Some[uint32](7),
		B: codec.None[uint32](),
	}

	buf := make([]byte, c.StackSize()+c.HeapSize(v))
	require.Equal(t, 10, len(buf))
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))

	want := []byte{0x01, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	require.Equal(t, want, buf)

	r := wire.NewReader(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	require.True(t, got.A.Valid)
	require.Equal(t, uint32(7), got.A.Value)
	require.False(t, got.B.Valid)
}

func TestScenarioS3SliceOfU16(t *testing.T) {
	c := codec.Seq(codec.U16)
	v := []uint16{1, 2, 3}

	buf := make([]byte, c.StackSize()+c.HeapSize(v))
	require.Equal(t, 14, len(buf))
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))

	wantInline := []byte{0x03, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00}
	wantHeap := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	require.Equal(t, wantInline, buf[:8])
	require.Equal(t, wantHeap, buf[8:])

	r := wire.NewReader(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestScenarioS4RecordWithBytes(t *testing.T) {
	type record struct {
		A uint32
		B []byte
	}
	c := codec.Tuple2(codec.U32, codec.Bytes)
	v := codec.Pair[uint32, []byte]{A: 1, B: []byte{2, 3}}

	buf := make([]byte, c.StackSize()+c.HeapSize(v))
	require.Equal(t, 14, len(buf))
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))

	wantInline := []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	require.Equal(t, wantInline, buf[:12])
	require.Equal(t, []byte{2, 3}, buf[12:])

	r := wire.NewReader(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(1), got.A)
	require.Equal(t, []byte{2, 3}, got.B)
	_ = record{}
}

func TestScenarioS5Enum(t *testing.T) {
	c := codec.Enum2(codec.U8, codec.U32)
	require.Equal(t, 5, c.StackSize()) // 1 tag byte + max(1, 4)

	buf0 := make([]byte, c.StackSize())
	w0 := wire.NewWriter(buf0)
	require.NoError(t, c.SerializeInto(w0, 0, codec.V0[uint8, uint32](0xAA)))
	require.Equal(t, []byte{0x00, 0xAA, 0x00, 0x00, 0x00}, buf0)

	buf1 := make([]byte, c.StackSize())
	w1 := wire.NewWriter(buf1)
	require.NoError(t, c.SerializeInto(w1, 0, codec.V1[uint8, uint32](0x01020304)))
	require.Equal(t, []byte{0x01, 0x04, 0x03, 0x02, 0x01}, buf1)

	r0 := wire.NewReader(buf0)
	got0, err := c.Deserialize(r0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0), got0.Tag)
	require.Equal(t, uint8(0xAA), got0.A)

	r1 := wire.NewReader(buf1)
	got1, err := c.Deserialize(r1, 0)
	require.NoError(t, err)
	require.Equal(t, byte(1), got1.Tag)
	require.Equal(t, uint32(0x01020304), got1.B)
}

func TestScenarioS6Str(t *testing.T) {
	v := "hi"
	buf := make([]byte, codec.Str.StackSize()+codec.Str.HeapSize(v))
	require.Equal(t, 10, len(buf))
	w := wire.NewWriter(buf)
	require.NoError(t, codec.Str.SerializeInto(w, 0, v))

	require.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}, buf[:8])
	require.Equal(t, []byte("hi"), buf[8:])

	r := wire.NewReader(buf)
	got, err := codec.Str.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, "hi", got)

	// Corrupting the heap byte with 0xFF, a byte that never occurs in
	// valid UTF-8, must fail strict decode.
	bad := append([]byte(nil), buf...)
	bad[9] = 0xFF
	rb := wire.NewReader(bad)
	_, err = codec.Str.Deserialize(rb, 0)
	require.Error(t, err)
}
