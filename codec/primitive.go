// Package codec provides the wire.Codec[T] implementations for every
// formula in the catalogue: the concrete "tagged descriptor
// table keyed by formula identity" the core design notes call for in a
// language without monomorphizable trait resolution. Each exported value
// or constructor here is one catalogue entry, built once and reused across
// every call site that shares its (formula, value type) pair.
package codec

import (
	"github.com/zakarumych/alkahest/wire"
)

// primitive implements wire.Codec[T] for any fixed-width, never-heap type
// whose get/put pair is supplied by the caller. Every integer and float
// formula up to 64 bits, plus FixedUsize/FixedIsize, is one instantiation
// of this struct, so those catalogue entries are all data, not repeated
// logic; U128, I128 and Bool have codecs of their own.
type primitive[T any] struct {
	size int
	put  func(w *wire.Writer, at int, v T)
	get  func(r *wire.Reader, at int) T
}

func (p primitive[T]) StackSize() int        { return p.size }
func (p primitive[T]) HeapSize(T) int        { return 0 }
func (p primitive[T]) Bare() bool            { return true }
func (p primitive[T]) DeserializeUnvalidated(r *wire.Reader, at int) T {
	return p.get(r, at)
}

func (p primitive[T]) SerializeInto(w *wire.Writer, at int, v T) error {
	p.put(w, at, v)
	return nil
}

func (p primitive[T]) Deserialize(r *wire.Reader, at int) (T, error) {
	if err := r.CheckBounds(at, p.size); err != nil {
		var zero T
		return zero, err
	}
	return p.get(r, at), nil
}

// U8 is the wire.Codec for formula.U8 / uint8.
var U8 = primitive[uint8]{
	size: 1,
	put:  func(w *wire.Writer, at int, v uint8) { w.PutUint8At(at, v) },
	get:  func(r *wire.Reader, at int) uint8 { return r.GetUint8At(at) },
}

// I8 is the wire.Codec for formula.I8 / int8.
var I8 = primitive[int8]{
	size: 1,
	put:  func(w *wire.Writer, at int, v int8) { w.PutInt8At(at, v) },
	get:  func(r *wire.Reader, at int) int8 { return r.GetInt8At(at) },
}

// U16 is the wire.Codec for formula.U16 / uint16.
var U16 = primitive[uint16]{
	size: 2,
	put:  func(w *wire.Writer, at int, v uint16) { w.PutUint16At(at, v) },
	get:  func(r *wire.Reader, at int) uint16 { return r.GetUint16At(at) },
}

// I16 is the wire.Codec for formula.I16 / int16.
var I16 = primitive[int16]{
	size: 2,
	put:  func(w *wire.Writer, at int, v int16) { w.PutInt16At(at, v) },
	get:  func(r *wire.Reader, at int) int16 { return r.GetInt16At(at) },
}

// U32 is the wire.Codec for formula.U32 / uint32.
var U32 = primitive[uint32]{
	size: 4,
	put:  func(w *wire.Writer, at int, v uint32) { w.PutUint32At(at, v) },
	get:  func(r *wire.Reader, at int) uint32 { return r.GetUint32At(at) },
}

// I32 is the wire.Codec for formula.I32 / int32.
var I32 = primitive[int32]{
	size: 4,
	put:  func(w *wire.Writer, at int, v int32) { w.PutInt32At(at, v) },
	get:  func(r *wire.Reader, at int) int32 { return r.GetInt32At(at) },
}

// F32 is the wire.Codec for formula.F32 / float32.
var F32 = primitive[float32]{
	size: 4,
	put:  func(w *wire.Writer, at int, v float32) { w.PutFloat32At(at, v) },
	get:  func(r *wire.Reader, at int) float32 { return r.GetFloat32At(at) },
}

// U64 is the wire.Codec for formula.U64 / uint64.
var U64 = primitive[uint64]{
	size: 8,
	put:  func(w *wire.Writer, at int, v uint64) { w.PutUint64At(at, v) },
	get:  func(r *wire.Reader, at int) uint64 { return r.GetUint64At(at) },
}

// I64 is the wire.Codec for formula.I64 / int64.
var I64 = primitive[int64]{
	size: 8,
	put:  func(w *wire.Writer, at int, v int64) { w.PutInt64At(at, v) },
	get:  func(r *wire.Reader, at int) int64 { return r.GetInt64At(at) },
}

// F64 is the wire.Codec for formula.F64 / float64.
var F64 = primitive[float64]{
	size: 8,
	put:  func(w *wire.Writer, at int, v float64) { w.PutFloat64At(at, v) },
	get:  func(r *wire.Reader, at int) float64 { return r.GetFloat64At(at) },
}

// FixedUsize is the wire.Codec for formula.FixedUsize / uint64, truncated
// and widened to the build's AddressWidth so its wire size stays
// platform-independent.
var FixedUsize = primitive[uint64]{
	size: wire.AddressWidth,
	put:  func(w *wire.Writer, at int, v uint64) { w.PutAddrAt(at, v) },
	get:  func(r *wire.Reader, at int) uint64 { return r.GetAddrAt(at) },
}

// FixedIsize is the wire.Codec for formula.FixedIsize / int64, using the
// same address-word width as FixedUsize with a zig-zag-free two's
// complement reinterpretation (values are assumed to fit the word after
// the caller's own range check, mirroring FixedUsize's unchecked widening).
var FixedIsize = primitive[int64]{
	size: wire.AddressWidth,
	put: func(w *wire.Writer, at int, v int64) {
		w.PutAddrAt(at, uint64(v))
	},
	get: func(r *wire.Reader, at int) int64 {
		const shift = 64 - 8*wire.AddressWidth
		return int64(r.GetAddrAt(at)<<shift) >> shift
	},
}

// U128Value holds a 128-bit unsigned integer as two 64-bit words, matching the
// wire layout in PutUint128At/GetUint128At (low word first).
type U128Value struct {
	Lo, Hi uint64
}

type u128Codec struct{}

func (u128Codec) StackSize() int { return 16 }
func (u128Codec) HeapSize(U128Value) int { return 0 }
func (u128Codec) Bare() bool { return true }
func (u128Codec) SerializeInto(w *wire.Writer, at int, v U128Value) error {
	w.PutUint128At(at, v.Lo, v.Hi)
	return nil
}
func (u128Codec) Deserialize(r *wire.Reader, at int) (U128Value, error) {
	if err := r.CheckBounds(at, 16); err != nil {
		return U128Value{}, err
	}
	lo, hi := r.GetUint128At(at)
	return U128Value{Lo: lo, Hi: hi}, nil
}
func (u128Codec) DeserializeUnvalidated(r *wire.Reader, at int) U128Value {
	lo, hi := r.GetUint128At(at)
	return U128Value{Lo: lo, Hi: hi}
}

// U128 is the wire.Codec for formula.U128.
var U128 = u128Codec{}

// I128Value holds a signed 128-bit integer in the same two-word layout as
// U128Value; Hi's top bit is the sign.
type I128Value struct {
	Lo uint64
	Hi int64
}

type i128Codec struct{}

func (i128Codec) StackSize() int { return 16 }
func (i128Codec) HeapSize(I128Value) int { return 0 }
func (i128Codec) Bare() bool { return true }
func (i128Codec) SerializeInto(w *wire.Writer, at int, v I128Value) error {
	w.PutUint128At(at, v.Lo, uint64(v.Hi))
	return nil
}
func (i128Codec) Deserialize(r *wire.Reader, at int) (I128Value, error) {
	if err := r.CheckBounds(at, 16); err != nil {
		return I128Value{}, err
	}
	lo, hi := r.GetUint128At(at)
	return I128Value{Lo: lo, Hi: int64(hi)}, nil
}
func (i128Codec) DeserializeUnvalidated(r *wire.Reader, at int) I128Value {
	lo, hi := r.GetUint128At(at)
	return I128Value{Lo: lo, Hi: int64(hi)}
}

// I128 is the wire.Codec for formula.I128.
var I128 = i128Codec{}
