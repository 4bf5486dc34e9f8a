package codec

import (
	"fmt"

	"github.com/zakarumych/alkahest/wire"
)

// Lazy is the deferred-decode cursor for formula.Lazy[F]: it captures only
// the inline slice position and a reference to the full buffer at decode
// time; Get/GetUnvalidated run the ordinary F decode on demand.
type Lazy[T any] struct {
	r     *wire.Reader
	at    int
	codec wire.Codec[T]
}

// Get runs the validated decode for the captured position.
func (l Lazy[T]) Get() (T, error) { return l.codec.Deserialize(l.r, l.at) }

// GetUnvalidated runs the unvalidated decode for the captured position.
func (l Lazy[T]) GetUnvalidated() T { return l.codec.DeserializeUnvalidated(l.r, l.at) }

// lazyCodec implements wire.Codec[T] for formula.Lazy[F] with the same
// wire layout as the inner formula: SerializeInto and the eager
// Deserialize both delegate straight through. The deferred-decode
// capability lives in DeserializeLazy, a capability beyond the plain
// wire.Codec[T] surface that callers opt into explicitly: Lazy is a
// decode-side view rather than a distinct wire shape.
type lazyCodec[T any] struct {
	inner wire.Codec[T]
}

// LazyOf builds the wire.Codec for formula.Lazy[F], wrapping inner.
func LazyOf[T any](inner wire.Codec[T]) wire.Codec[T] {
	return lazyCodec[T]{inner: inner}
}

func (c lazyCodec[T]) StackSize() int            { return c.inner.StackSize() }
func (c lazyCodec[T]) HeapSize(v T) int          { return c.inner.HeapSize(v) }
func (c lazyCodec[T]) Bare() bool                { return c.inner.Bare() }
func (c lazyCodec[T]) SerializeInto(w *wire.Writer, at int, v T) error {
	return c.inner.SerializeInto(w, at, v)
}
func (c lazyCodec[T]) Deserialize(r *wire.Reader, at int) (T, error) {
	return c.inner.Deserialize(r, at)
}
func (c lazyCodec[T]) DeserializeUnvalidated(r *wire.Reader, at int) T {
	return c.inner.DeserializeUnvalidated(r, at)
}

// DeserializeLazy captures the deferred cursor at position at instead of
// recursing into the inner decode, the actual "defer per-element work"
// behavior the catalogue names Lazy for.
func DeserializeLazy[T any](codec wire.Codec[T], r *wire.Reader, at int) Lazy[T] {
	return Lazy[T]{r: r, at: at, codec: codec}
}

// LazySeq is the constant-time random-access cursor for formula.Lazy[Seq[F]]
//: Len is O(1) (read once from the inline
// reference pair), At(k) is O(1) independent of k, and the iteration
// window can be narrowed in O(1) from either end. All iterates the window
// front to back only; there is no back-to-front iterator.
type LazySeq[T any] struct {
	r       *wire.Reader
	start   int // absolute position of element 0's inline footprint
	count   int
	elem    int // inner.StackSize()
	inner   wire.Codec[T]
	lo, hi  int // current bidirectional-iteration window [lo, hi)
}

// NewLazySeq builds a LazySeq by reading the (count, offset) reference
// pair at position at in r and resolving it against inner's stack size.
// It performs the same structural validation Deserialize does; use
// NewLazySeqUnvalidated to skip it.
func NewLazySeq[T any](inner wire.Codec[T], r *wire.Reader, at int) (LazySeq[T], error) {
	if err := r.CheckBounds(at, 2*wire.AddressWidth); err != nil {
		return LazySeq[T]{}, err
	}
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	elem := inner.StackSize()
	start, err := r.HeapAt(tailOffset, int(count)*elem)
	if err != nil {
		return LazySeq[T]{}, err
	}
	return LazySeq[T]{r: r, start: start, count: int(count), elem: elem, inner: inner, hi: int(count)}, nil
}

// NewLazySeqUnvalidated is the unchecked counterpart of NewLazySeq.
func NewLazySeqUnvalidated[T any](inner wire.Codec[T], r *wire.Reader, at int) LazySeq[T] {
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start := r.HeapAtUnvalidated(tailOffset)
	return LazySeq[T]{r: r, start: start, count: int(count), elem: inner.StackSize(), inner: inner, hi: int(count)}
}

// Len returns the total element count, independent of the current
// iteration window.
func (s LazySeq[T]) Len() int { return s.count }

// At decodes element i in O(1) inline reads, independent of i.
func (s LazySeq[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.count {
		return zero, fmt.Errorf("alkahest: index %d out of range [0, %d)", i, s.count)
	}
	return s.inner.Deserialize(s.r, s.start+i*s.elem)
}

// AtUnvalidated is the unchecked counterpart of At; i must be in range.
func (s LazySeq[T]) AtUnvalidated(i int) T {
	return s.inner.DeserializeUnvalidated(s.r, s.start+i*s.elem)
}

// Clone returns an independent copy of the cursor's current iteration
// window; advancing the clone does not affect s.
func (s LazySeq[T]) Clone() LazySeq[T] { return s }

// SkipFront advances the front of the iteration window by n elements in
// O(1).
func (s LazySeq[T]) SkipFront(n int) LazySeq[T] {
	s.lo += n
	if s.lo > s.hi {
		s.lo = s.hi
	}
	return s
}

// SkipBack advances the back of the iteration window by n elements in
// O(1).
func (s LazySeq[T]) SkipBack(n int) LazySeq[T] {
	s.hi -= n
	if s.hi < s.lo {
		s.hi = s.lo
	}
	return s
}

// All yields every element in the current iteration window, front to back.
func (s LazySeq[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		for i := s.lo; i < s.hi; i++ {
			v, err := s.inner.Deserialize(s.r, s.start+i*s.elem)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Eager materializes the entire cursor's current window into an owned
// slice, for comparison against the ordinary eager decode path.
func (s LazySeq[T]) Eager() ([]T, error) {
	out := make([]T, 0, s.hi-s.lo)
	for i := s.lo; i < s.hi; i++ {
		v, err := s.inner.Deserialize(s.r, s.start+i*s.elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
