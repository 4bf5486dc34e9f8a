package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocHeapTailRelative(t *testing.T) {
	// Mirrors the Seq[U16] worked example: 4-byte count + 4-byte offset
	// inline, 6 bytes of heap payload, buffer length 14.
	buf := make([]byte, 14)
	w := NewWriter(buf)

	w.PutAddrAt(0, 3) // count
	start, tailOffset, err := w.AllocHeap(6)
	require.NoError(t, err)
	require.Equal(t, 8, start)
	require.Equal(t, uint64(6), tailOffset)
	w.PutAddrAt(4, tailOffset)

	w.PutUint16At(start, 1)
	w.PutUint16At(start+2, 2)
	w.PutUint16At(start+4, 3)

	require.Equal(t, []byte{3, 0, 0, 0, 6, 0, 0, 0}, buf[:8])
	r := NewReader(buf)
	require.Equal(t, uint16(1), r.GetUint16At(8))
}

func TestAllocHeapNestedOffsetsAreTailRelative(t *testing.T) {
	buf := make([]byte, 20)
	w := NewWriter(buf)

	// First allocation (innermost, e.g. a Str's bytes).
	innerStart, innerOffset, err := w.AllocHeap(4)
	require.NoError(t, err)
	require.Equal(t, 16, innerStart)
	require.Equal(t, uint64(4), innerOffset)

	// Second allocation (outer container header referencing the inner one).
	outerStart, outerOffset, err := w.AllocHeap(8)
	require.NoError(t, err)
	require.Equal(t, 8, outerStart)
	require.Equal(t, uint64(12), outerOffset)

	// Both offsets are relative to the single fixed buffer length (20),
	// not to each other.
	require.Equal(t, len(buf)-innerStart, int(innerOffset))
	require.Equal(t, len(buf)-outerStart, int(outerOffset))
}

func TestAllocHeapOverflowsBuffer(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)

	_, _, err := w.AllocHeap(8)
	require.Error(t, err)
}

func TestReaderHeapAtRejectsOutOfRangeOffset(t *testing.T) {
	buf := make([]byte, 10)
	r := NewReader(buf)

	_, err := r.HeapAt(100, 2)
	require.Error(t, err)
}

func TestReaderHeapAtRoundTrips(t *testing.T) {
	buf := make([]byte, 10)
	w := NewWriter(buf)
	start, tailOffset, err := w.AllocHeap(2)
	require.NoError(t, err)
	w.PutUint16At(start, 42)

	r := NewReader(buf)
	resolved, err := r.HeapAt(tailOffset, 2)
	require.NoError(t, err)
	require.Equal(t, start, resolved)
	require.Equal(t, uint16(42), r.GetUint16At(resolved))
}

func TestPrimitivePutGetRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	r := NewReader(buf)

	w.PutUint8At(0, 0xAB)
	require.Equal(t, uint8(0xAB), r.GetUint8At(0))

	w.PutInt16At(1, -1234)
	require.Equal(t, int16(-1234), r.GetInt16At(1))

	w.PutUint32At(4, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), r.GetUint32At(4))

	w.PutInt64At(8, -9876543210)
	require.Equal(t, int64(-9876543210), r.GetInt64At(8))

	w.PutFloat32At(16, 3.5)
	require.Equal(t, float32(3.5), r.GetFloat32At(16))

	w.PutFloat64At(20, 2.718281828)
	require.Equal(t, 2.718281828, r.GetFloat64At(20))

	w.PutUint128At(32, 0x1122334455667788, 0x99AABBCCDDEEFF00)
	lo, hi := r.GetUint128At(32)
	require.Equal(t, uint64(0x1122334455667788), lo)
	require.Equal(t, uint64(0x99AABBCCDDEEFF00), hi)
}

func TestCheckAddrRejectsOutOfRangeValue(t *testing.T) {
	if AddressWidth >= 8 {
		t.Skip("no value overflows a 64-bit address word")
	}
	require.Error(t, CheckAddr(MaxAddress+1))
	require.NoError(t, CheckAddr(MaxAddress))
}
