// Package alkahest is the public entrypoint over the wire/formula/codec
// core: serialized_size, serialize_into, serialize_to_vec,
// serialize_unchecked, deserialize, access, and read, each a thin wrapper
// that hands a wire.Codec[T] the buffer and position it needs. Callers
// typically do not call wire/codec/formula directly; they build a
// wire.Codec[T] once (a package-level var for a
// primitive, a constructor call for a compound shape) and drive it through
// these functions.
package alkahest

import (
	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/internal/pool"
	"github.com/zakarumych/alkahest/wire"
)

// SerializedSize computes the exact total bytes serializing v under codec
// requires, performing no writes.
func SerializedSize[T any](codec wire.Codec[T], v T) int {
	return codec.StackSize() + codec.HeapSize(v)
}

// SerializeInto writes v into B under codec, returning the number of bytes
// written. B must be at least SerializedSize(codec, v) bytes; a shorter
// buffer fails with *errs.BufferTooSmall.
func SerializeInto[T any](codec wire.Codec[T], v T, buf []byte) (int, error) {
	need := SerializedSize(codec, v)
	if len(buf) < need {
		return 0, &errs.BufferTooSmall{Required: need}
	}
	w := wire.NewWriter(buf[:need])
	if err := codec.SerializeInto(w, 0, v); err != nil {
		return 0, err
	}
	return need, nil
}

// SerializeToVec grows dst as needed and appends v's encoding under codec,
// returning the resulting slice. Infallible aside from a SizeOverflow that
// no buffer growth could fix. Growth uses pool.Buffer's geometric
// doubling, so a destination slice that is reused across many calls settles into a
// capacity that rarely needs reallocating.
func SerializeToVec[T any](codec wire.Codec[T], v T, dst []byte) ([]byte, error) {
	need := SerializedSize(codec, v)
	base := len(dst)

	buf := pool.Buffer{B: dst}
	buf.ExtendOrGrow(need)
	dst = buf.Bytes()

	w := wire.NewWriter(dst[base : base+need])
	if err := codec.SerializeInto(w, 0, v); err != nil {
		return dst[:base], err
	}
	return dst, nil
}

// SerializeUnchecked writes v into B under codec without checking B's
// length first; it panics if B is too small. Intended for call sites that
// already computed SerializedSize themselves and want to skip the
// redundant check.
func SerializeUnchecked[T any](codec wire.Codec[T], v T, buf []byte) int {
	need := SerializedSize(codec, v)
	w := wire.NewWriter(buf[:need])
	if err := codec.SerializeInto(w, 0, v); err != nil {
		panic(err)
	}
	return need
}

// Deserialize decodes a T from buf under codec with full structural
// validation.
func Deserialize[T any](codec wire.Codec[T], buf []byte) (T, error) {
	r := wire.NewReader(buf)
	return codec.Deserialize(r, 0)
}

// Read is an alias for Deserialize: an eager read that consumes the buffer
// once. It exists as a separate name since callers expect both verbs on
// this surface.
func Read[T any](codec wire.Codec[T], buf []byte) (T, error) {
	return Deserialize(codec, buf)
}

// Access returns a *wire.Reader positioned over buf for constant-time
// random access without materializing children. Pair it with
// codec.Deserialize at whatever offsets the caller's own navigation
// computes, or with the Lazy helpers in package codec for sequences.
func Access(buf []byte) *wire.Reader {
	return wire.NewReader(buf)
}

// DeserializeUnvalidated decodes a T from buf under codec, skipping bounds
// and UTF-8 checks on leaf reads. Callers must only use this when buf is
// known to originate from a trusted serializer of the same formula.
func DeserializeUnvalidated[T any](codec wire.Codec[T], buf []byte) T {
	r := wire.NewReader(buf)
	return codec.DeserializeUnvalidated(r, 0)
}
