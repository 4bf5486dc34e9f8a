// Package wire implements the inline/heap buffer engine that every
// Formula codec serializes through: a single destination buffer with an
// inline region growing forward from byte 0 and a heap region growing
// backward from the tail, addressed with tail-relative offsets (distance
// from the end of the buffer back to the referenced heap byte). The wire
// format is always little-endian; AddressWidth (one of 1/2/4/8 bytes,
// selected at build time, see width_default.go) is the only configurable
// knob.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/zakarumych/alkahest/errs"
)

// Codec is the capability every Formula type exercises against Writer and
// Reader. A codec never owns a buffer; it is handed one by its caller and
// writes or reads at explicit positions, so compound codecs (Tuple, Seq,
// Option, ...) can call into element codecs without giving up control of
// the cursor.
type Codec[T any] interface {
	// StackSize is the fixed number of inline bytes this formula always
	// occupies, independent of the value. Formulas whose size depends on
	// the value (Bytes, Str, Seq) still report a fixed stack size here:
	// the address word(s) that point into the heap.
	StackSize() int

	// HeapSize returns the number of heap bytes value v requires. Formulas
	// that never spill to the heap (fixed-size primitives, Tuple/Array of
	// such) return 0.
	HeapSize(v T) int

	// SerializeInto writes v's inline representation at buf[at:at+StackSize()]
	// and, if HeapSize(v) > 0, its heap payload via w.AllocHeap.
	SerializeInto(w *Writer, at int, v T) error

	// Deserialize decodes a value from buf[at:at+StackSize()], following
	// tail-relative offsets into the heap region as needed, with full
	// structural validation.
	Deserialize(r *Reader, at int) (T, error)

	// DeserializeUnvalidated is the same decode but skips bounds and
	// structural checks, for callers that already trust the buffer
	// (e.g. re-reading a buffer this process just wrote).
	DeserializeUnvalidated(r *Reader, at int) T

	// Bare reports whether this formula may appear at the top level of a
	// message without being wrapped in Ref. Seq, Bytes, Str and the
	// tscodec sequences report false; Tuple, Array, Option and Lazy report true only when all their
	// parts do; Ref and the Enum codecs always report true. A bare formula
	// may still use the heap.
	Bare() bool
}

// Writer accumulates a value's inline and heap regions into a single
// fixed-length buffer. The final buffer length must be known up front
// (computed via StackSize+HeapSize of the root value) because tail-relative
// offsets are relative to that length; Writer never grows its buffer.
type Writer struct {
	buf       []byte
	heapStart int // next heap byte is written at heapStart-1, then decremented
}

// NewWriter wraps buf, which must already be exactly the final size the
// value requires (StackSize+HeapSize of the root value, as
// alkahest.SerializedSize computes it). The heap allocator starts at len(buf) and
// bumps downward as AllocHeap is called.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf, heapStart: len(buf)}
}

// Bytes returns the underlying buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the total buffer length.
func (w *Writer) Len() int { return len(w.buf) }

// AllocHeap reserves n bytes at the current heap cursor and returns the
// absolute start position to write them at, along with the tail-relative
// offset a caller should store in the inline region to reference them.
// The offset is len(buf)-start (0 when n is 0), so it stays correct no matter how
// deeply the allocating codec is nested inside another compound formula:
// every offset is measured from the one fixed buffer length, never from a
// local cursor.
func (w *Writer) AllocHeap(n int) (start int, tailOffset uint64, err error) {
	if n == 0 {
		return w.heapStart, 0, nil
	}
	start = w.heapStart - n
	if start < 0 {
		return 0, 0, &errs.BufferTooSmall{Required: len(w.buf) - w.heapStart + n}
	}
	w.heapStart = start
	tailOffset = uint64(len(w.buf) - start)
	if tailOffset > MaxAddress {
		return 0, 0, &errs.SizeOverflow{Value: tailOffset, Width: AddressWidth}
	}
	return start, tailOffset, nil
}

// HeapUsed returns how many bytes of heap have been allocated so far.
func (w *Writer) HeapUsed() int { return len(w.buf) - w.heapStart }

// PutBytesAt copies b into buf starting at at. Callers are responsible for
// ensuring at+len(b) is within a region they own (inline span or a heap
// allocation returned by AllocHeap).
func (w *Writer) PutBytesAt(at int, b []byte) {
	copy(w.buf[at:], b)
}

// ZeroAt writes n zero bytes starting at at. Used by codecs that must
// write deterministic padding for bytes they otherwise have nothing to
// put there (an absent Option, an enum variant narrower than the widest
// one), since a destination buffer is not guaranteed to start zeroed.
func (w *Writer) ZeroAt(at, n int) {
	clear(w.buf[at : at+n])
}

// PutAddrAt writes v, a length or tail-relative offset, as an AddressWidth-byte
// little-endian word at position at. v must already have been checked
// against MaxAddress by the caller (AllocHeap does this for heap offsets;
// sequence/string lengths are checked by their codecs).
func (w *Writer) PutAddrAt(at int, v uint64) {
	putAddr(w.buf, at, v)
}

func (w *Writer) PutUint8At(at int, v uint8)   { w.buf[at] = v }
func (w *Writer) PutInt8At(at int, v int8)     { w.buf[at] = byte(v) }
func (w *Writer) PutUint16At(at int, v uint16) { binary.LittleEndian.PutUint16(w.buf[at:], v) }
func (w *Writer) PutInt16At(at int, v int16)   { binary.LittleEndian.PutUint16(w.buf[at:], uint16(v)) }
func (w *Writer) PutUint32At(at int, v uint32) { binary.LittleEndian.PutUint32(w.buf[at:], v) }
func (w *Writer) PutInt32At(at int, v int32)   { binary.LittleEndian.PutUint32(w.buf[at:], uint32(v)) }
func (w *Writer) PutUint64At(at int, v uint64) { binary.LittleEndian.PutUint64(w.buf[at:], v) }
func (w *Writer) PutInt64At(at int, v int64)   { binary.LittleEndian.PutUint64(w.buf[at:], uint64(v)) }
func (w *Writer) PutFloat32At(at int, v float32) {
	binary.LittleEndian.PutUint32(w.buf[at:], math.Float32bits(v))
}
func (w *Writer) PutFloat64At(at int, v float64) {
	binary.LittleEndian.PutUint64(w.buf[at:], math.Float64bits(v))
}

// PutUint128At writes a 128-bit unsigned value as two little-endian 64-bit
// words, low word first, matching the catalogue's U128 layout.
func (w *Writer) PutUint128At(at int, lo, hi uint64) {
	binary.LittleEndian.PutUint64(w.buf[at:], lo)
	binary.LittleEndian.PutUint64(w.buf[at+8:], hi)
}

// Reader views a decode buffer. Unlike Writer it does not track a heap
// cursor: every heap read is computed on demand from a tail-relative
// offset stored in the inline region, which is what gives the format
// constant-time random access without a prior linear scan.
type Reader struct {
	buf []byte
}

// NewReader wraps buf for decoding.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Bytes returns the underlying buffer.
func (r *Reader) Bytes() []byte { return r.buf }

// Len returns the buffer length.
func (r *Reader) Len() int { return len(r.buf) }

// HeapAt resolves a tail-relative offset read from the inline region into
// an absolute start position in buf, validating that [start, start+n) lies
// within the buffer.
func (r *Reader) HeapAt(tailOffset uint64, n int) (start int, err error) {
	if tailOffset > uint64(len(r.buf)) {
		return 0, &errs.InvalidEncoding{At: len(r.buf), What: "tail-relative offset exceeds buffer length"}
	}
	start = len(r.buf) - int(tailOffset)
	if start < 0 || start+n > len(r.buf) {
		return 0, &errs.InvalidEncoding{At: start, What: "heap span outside buffer"}
	}
	return start, nil
}

// HeapAtUnvalidated is the unchecked counterpart of HeapAt.
func (r *Reader) HeapAtUnvalidated(tailOffset uint64) int {
	return len(r.buf) - int(tailOffset)
}

// CheckBounds reports an error if [at, at+n) is not within buf.
func (r *Reader) CheckBounds(at, n int) error {
	if at < 0 || n < 0 || at+n > len(r.buf) {
		return &errs.InvalidEncoding{At: at, What: "span outside buffer"}
	}
	return nil
}

// GetAddrAt reads an AddressWidth-byte little-endian word at position at.
func (r *Reader) GetAddrAt(at int) uint64 {
	return getAddr(r.buf, at)
}

func (r *Reader) GetUint8At(at int) uint8   { return r.buf[at] }
func (r *Reader) GetInt8At(at int) int8     { return int8(r.buf[at]) }
func (r *Reader) GetUint16At(at int) uint16 { return binary.LittleEndian.Uint16(r.buf[at:]) }
func (r *Reader) GetInt16At(at int) int16   { return int16(binary.LittleEndian.Uint16(r.buf[at:])) }
func (r *Reader) GetUint32At(at int) uint32 { return binary.LittleEndian.Uint32(r.buf[at:]) }
func (r *Reader) GetInt32At(at int) int32   { return int32(binary.LittleEndian.Uint32(r.buf[at:])) }
func (r *Reader) GetUint64At(at int) uint64 { return binary.LittleEndian.Uint64(r.buf[at:]) }
func (r *Reader) GetInt64At(at int) int64   { return int64(binary.LittleEndian.Uint64(r.buf[at:])) }
func (r *Reader) GetFloat32At(at int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(r.buf[at:]))
}
func (r *Reader) GetFloat64At(at int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(r.buf[at:]))
}

// GetUint128At reads a 128-bit unsigned value written by PutUint128At.
func (r *Reader) GetUint128At(at int) (lo, hi uint64) {
	lo = binary.LittleEndian.Uint64(r.buf[at:])
	hi = binary.LittleEndian.Uint64(r.buf[at+8:])
	return lo, hi
}

// CheckAddr validates that v fits in the configured address width before a
// codec writes a length or count word, so overflow is caught at the write
// site rather than silently truncated.
func CheckAddr(v uint64) error {
	if v > MaxAddress {
		return &errs.SizeOverflow{Value: v, Width: AddressWidth}
	}
	return nil
}

func putAddr(buf []byte, at int, v uint64) {
	switch AddressWidth {
	case 1:
		buf[at] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(buf[at:], uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf[at:], uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(buf[at:], v)
	}
}

func getAddr(buf []byte, at int) uint64 {
	switch AddressWidth {
	case 1:
		return uint64(buf[at])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf[at:]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf[at:]))
	case 8:
		return binary.LittleEndian.Uint64(buf[at:])
	}
	return 0
}
