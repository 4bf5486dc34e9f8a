package codec_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakarumych/alkahest/codec"
	"github.com/zakarumych/alkahest/wire"
)

func TestRoundTripPrimitives(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		v := rng.Uint64()
		got := roundTrip(t, codec.U64, v)
		require.Equal(t, v, got)
	}
}

func TestRoundTripSeqOfStr(t *testing.T) {
	c := codec.Seq(codec.Str)
	v := []string{"alpha", "", "gamma delta", "日本語"}
	got := roundTrip(t, c, v)
	require.Equal(t, v, got)
}

func TestRoundTripOptionalRef(t *testing.T) {
	c := codec.Option(codec.Ref(codec.Str))
	present := codec.Some("indirect")
	require.Equal(t, present, roundTrip(t, c, present))

	absent := codec.None[string]()
	require.Equal(t, absent, roundTrip(t, c, absent))
}

func TestRoundTripNestedSeq(t *testing.T) {
	c := codec.Seq(codec.Seq(codec.U16))
	v := [][]uint16{{1, 2, 3}, {}, {4}}
	require.Equal(t, v, roundTrip(t, c, v))
}

func TestRoundTripArray(t *testing.T) {
	c := codec.Array(codec.U32, 4)
	v := []uint32{10, 20, 30, 40}
	require.Equal(t, v, roundTrip(t, c, v))
}

func TestRoundTripTuple3WithBytes(t *testing.T) {
	c := codec.Tuple3(codec.U8, codec.Bytes, codec.Str)
	v := codec.Triple[uint8, []byte, string]{A: 9, B: []byte{1, 2, 3}, C: "tail"}
	got := roundTrip(t, c, v)
	require.Equal(t, v, got)
}

func roundTrip[T any](t *testing.T, c wire.Codec[T], v T) T {
	t.Helper()
	need := c.StackSize() + c.HeapSize(v)
	buf := make([]byte, need)
	w := wire.NewWriter(buf)
	require.NoError(t, c.SerializeInto(w, 0, v))
	r := wire.NewReader(buf)
	got, err := c.Deserialize(r, 0)
	require.NoError(t, err)
	return got
}
