package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest/codec"
	"github.com/zakarumych/alkahest/wire"
)

// Property 3 (tail-relative addressing): appending bytes to the end of an
// otherwise-valid buffer moves the tail, so every tail-relative offset now
// resolves to the wrong absolute position. Decoding the extended buffer
// must either fail or silently produce different bytes than the original,
// not coincidentally still decode to the original value.
func TestTailRelativeAddressingBreaksOnAppend(t *testing.T) {
	c := codec.Seq(codec.Str)
	v := []string{"hello", "world"}
	need := c.StackSize() + c.HeapSize(v)
	buf := make([]byte, need)
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))

	r := wire.NewReader(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, v, got)

	extended := append(append([]byte(nil), buf...), []byte{0xFF, 0xFF, 0xFF, 0xFF}...)
	rExt := wire.NewReader(extended)
	gotExt, errExt := c.Deserialize(rExt, 0)
	if errExt == nil {
		require.NotEqual(t, v, gotExt)
	}
}

// Property 4 (lazy equivalence): a LazySeq cursor and the eager Seq decode
// must agree element by element.
func TestLazyEquivalence(t *testing.T) {
	c := codec.Seq(codec.U32)
	v := []uint32{10, 20, 30, 40, 50}
	need := c.StackSize() + c.HeapSize(v)
	buf := make([]byte, need)
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))

	r := wire.NewReader(buf)
	eager, err := c.Deserialize(r, 0)
	require.NoError(t, err)

	lazy, err := codec.NewLazySeq(codec.U32, r, 0)
	require.NoError(t, err)
	require.Equal(t, len(eager), lazy.Len())

	for i, want := range eager {
		got, err := lazy.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	lazyAll, err := lazy.Eager()
	require.NoError(t, err)
	require.Equal(t, eager, lazyAll)
}

// Property 5 (constant-time random access): element k is reachable via a
// fixed number of inline reads independent of k; this is a structural
// guarantee (At computes element k's position directly, with no scan over
// preceding elements). The test checks that the last and the first of
// 1000 elements decode to their values when read directly.
func TestLazySeqRandomAccessIsDirect(t *testing.T) {
	c := codec.Seq(codec.U64)
	v := make([]uint64, 1000)
	for i := range v {
		v[i] = uint64(i)
	}
	need := c.StackSize() + c.HeapSize(v)
	buf := make([]byte, need)
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))

	r := wire.NewReader(buf)
	lazy, err := codec.NewLazySeq(codec.U64, r, 0)
	require.NoError(t, err)

	got, err := lazy.At(999)
	require.NoError(t, err)
	require.Equal(t, uint64(999), got)

	got, err = lazy.At(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), got)
}

// Property 6 (padding safety): enum variants with differing field sizes
// always produce the same inline footprint, and the padding bytes are
// never consulted on decode regardless of content.
func TestEnumPaddingIsIgnoredOnDecode(t *testing.T) {
	c := codec.Enum2(codec.U8, codec.U32)
	buf := make([]byte, c.StackSize())
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, codec.V0[uint8, uint32](7)))

	// Corrupt the padding bytes (everything after the 1-byte payload).
	for i := 2; i < len(buf); i++ {
		buf[i] = 0xFF
	}

	r := wire.NewReader(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0), got.Tag)
	require.Equal(t, uint8(7), got.A)
}

func TestEnumRejectsOutOfRangeTag(t *testing.T) {
	c := codec.Enum2(codec.U8, codec.U32)
	buf := make([]byte, c.StackSize())
	buf[0] = 2 // only tags 0 and 1 are valid

	r := wire.NewReader(buf)
	_, err := c.Deserialize(r, 0)
	require.Error(t, err)
}
