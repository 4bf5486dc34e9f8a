// Package formula declares the type-level descriptors named by the core
// data model: zero-size marker types, one per shipped layout. A Formula
// has no runtime representation; it exists purely to name a layout.
// Constructing a marker value costs nothing and stores nothing. The
// wire.Codec constructors in package codec do not take these types as
// parameters: they are built from other codecs (`codec.Seq(codec.U32)`),
// and the marker types serve as documentation of the layout each one
// implements.
package formula

// Formula is implemented by every marker type in this package. It carries
// no methods: the descriptor's actual attributes (stack size, max stack
// size, EXACT_SIZE, heap_bounded) live on the matching wire.Codec, since Go
// has no const-generic evaluation over a type parameter alone.
type Formula interface {
	formulaMarker()
}

type marker struct{}

func (marker) formulaMarker() {}

// U8, I8, ..., F64 name the fixed-width primitive layouts of §3.
type (
	U8  struct{ marker }
	I8  struct{ marker }
	U16 struct{ marker }
	I16 struct{ marker }
	U32 struct{ marker }
	I32 struct{ marker }
	U64 struct{ marker }
	I64 struct{ marker }
	F32 struct{ marker }
	F64 struct{ marker }

	// U128 and I128 are the 16-byte wide integers, stored as two
	// little-endian 64-bit words (low word first).
	U128 struct{ marker }
	I128 struct{ marker }

	// Bool is the 1-byte boolean layout.
	Bool struct{ marker }

	// FixedUsize and FixedIsize are platform-independent address-word-sized
	// integers: W bytes wide, where W is the build's AddressWidth.
	FixedUsize struct{ marker }
	FixedIsize struct{ marker }
)

// Option names the `Option<F>` layout: a 1-byte tag followed by F's inline
// footprint, a value when present or zero padding when absent.
type Option[F Formula] struct{ marker }

// Ref names the `Ref<F>` layout: F's entire inline+heap payload is moved to
// the heap and referenced by a single tail-relative offset.
type Ref[F Formula] struct{ marker }

// Seq names the `Seq<F>` / slice layout: a (count, offset) reference pair
// inline, with N copies of F's inline footprint (and their heap payloads)
// written contiguously in the heap.
type Seq[F Formula] struct{ marker }

// Bytes names the raw byte-run layout: a (count, offset) reference pair
// inline, with the raw bytes in the heap.
type Bytes struct{ marker }

// Str names the UTF-8 string layout: identical wire shape to Bytes, but
// decode additionally validates UTF-8.
type Str struct{ marker }

// Lazy names a formula whose inline footprint is unchanged from F but
// whose decode defers to the caller: only the inline slice and a buffer
// anchor are captured at decode time.
type Lazy[F Formula] struct{ marker }

// DeltaSeq names the supplemental alternate encoding for Seq<I64> that
// stores heap payload as the zig-zag varint first value followed by
// zig-zag varint deltas. Its inline footprint is identical to Seq[I64] (a (count, offset)
// pair); only the heap byte layout differs.
type DeltaSeq struct{ marker }

// GorillaSeq names the supplemental alternate encoding for Seq<F64> using
// the Gorilla XOR float compression scheme for its heap payload. Its
// inline footprint is identical to Seq[F64].
type GorillaSeq struct{ marker }

// Tuple2, Tuple3, and Tuple4 name fixed-arity tuple layouts: fields
// concatenated inline in declared order, each field's heap payload written
// to the tail in the same order.
type (
	Tuple2[A, B Formula]       struct{ marker }
	Tuple3[A, B, C Formula]    struct{ marker }
	Tuple4[A, B, C, D Formula] struct{ marker }
)

// Array names the `[F; N]` fixed-size array layout: N copies of F's inline
// footprint concatenated, each with its own heap payload.
type Array[F Formula] struct{ marker }

// Enum2 and Enum3 name tagged-union layouts: a leading variant-tag byte
// followed by the chosen variant's inline encoding, padded to the widest
// variant's footprint so every variant occupies a uniform inline size
//.
type (
	Enum2[A, B Formula]    struct{ marker }
	Enum3[A, B, C Formula] struct{ marker }
)
