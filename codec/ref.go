package codec

import "github.com/zakarumych/alkahest/wire"

// refCodec implements wire.Codec[T] for formula.Ref[F]: F's entire
// inline+heap payload moves to the heap; the inline footprint shrinks to a
// single tail-relative offset.
type refCodec[T any] struct {
	inner wire.Codec[T]
}

// Ref builds the wire.Codec for formula.Ref[F]. This is the only
// indirection the catalogue offers, and is required to give recursive
// formulas a bounded stack size.
func Ref[T any](inner wire.Codec[T]) wire.Codec[T] {
	return refCodec[T]{inner: inner}
}

func (refCodec[T]) StackSize() int { return wire.AddressWidth }

func (c refCodec[T]) HeapSize(v T) int {
	return c.inner.StackSize() + c.inner.HeapSize(v)
}

func (refCodec[T]) Bare() bool { return true }

func (c refCodec[T]) SerializeInto(w *wire.Writer, at int, v T) error {
	n := c.inner.StackSize() + c.inner.HeapSize(v)
	start, tailOffset, err := w.AllocHeap(n)
	if err != nil {
		return err
	}
	w.PutAddrAt(at, tailOffset)
	return c.inner.SerializeInto(w, start, v)
}

func (c refCodec[T]) Deserialize(r *wire.Reader, at int) (T, error) {
	var zero T
	if err := r.CheckBounds(at, wire.AddressWidth); err != nil {
		return zero, err
	}
	tailOffset := r.GetAddrAt(at)
	start, err := r.HeapAt(tailOffset, c.inner.StackSize())
	if err != nil {
		return zero, err
	}
	return c.inner.Deserialize(r, start)
}

func (c refCodec[T]) DeserializeUnvalidated(r *wire.Reader, at int) T {
	tailOffset := r.GetAddrAt(at)
	start := r.HeapAtUnvalidated(tailOffset)
	return c.inner.DeserializeUnvalidated(r, start)
}
