package codec

import (
	"iter"

	"github.com/zakarumych/alkahest/wire"
)

// seqCodec implements wire.Codec[[]T] for formula.Seq[F]: a (count,
// offset) reference pair inline, with N copies of F's inline footprint
// carved out of the heap region as one contiguous block starting at the
// sequence's offset. Each element's own heap payload is allocated
// separately by the element codec, below that block.
type seqCodec[T any] struct {
	inner wire.Codec[T]
}

// Seq builds the wire.Codec for formula.Seq[F] / a Go slice []T.
func Seq[T any](inner wire.Codec[T]) wire.Codec[[]T] {
	return seqCodec[T]{inner: inner}
}

func (seqCodec[T]) StackSize() int { return 2 * wire.AddressWidth }

func (c seqCodec[T]) HeapSize(v []T) int {
	total := len(v) * c.inner.StackSize()
	for _, item := range v {
		total += c.inner.HeapSize(item)
	}
	return total
}

func (seqCodec[T]) Bare() bool { return false }

func (c seqCodec[T]) SerializeInto(w *wire.Writer, at int, v []T) error {
	elemStack := c.inner.StackSize()
	if err := wire.CheckAddr(uint64(len(v))); err != nil {
		return err
	}

	start, tailOffset, err := w.AllocHeap(len(v) * elemStack)
	if err != nil {
		return err
	}
	w.PutAddrAt(at, uint64(len(v)))
	w.PutAddrAt(at+wire.AddressWidth, tailOffset)

	for i, item := range v {
		if err := c.inner.SerializeInto(w, start+i*elemStack, item); err != nil {
			return err
		}
	}
	return nil
}

func (c seqCodec[T]) Deserialize(r *wire.Reader, at int) ([]T, error) {
	if err := r.CheckBounds(at, 2*wire.AddressWidth); err != nil {
		return nil, err
	}
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)

	elemStack := c.inner.StackSize()
	start, err := r.HeapAt(tailOffset, int(count)*elemStack)
	if err != nil {
		return nil, err
	}

	out := make([]T, count)
	for i := range out {
		v, err := c.inner.Deserialize(r, start+i*elemStack)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c seqCodec[T]) DeserializeUnvalidated(r *wire.Reader, at int) []T {
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start := r.HeapAtUnvalidated(tailOffset)

	elemStack := c.inner.StackSize()
	out := make([]T, count)
	for i := range out {
		out[i] = c.inner.DeserializeUnvalidated(r, start+i*elemStack)
	}
	return out
}

// CollectSeq materializes an iterator-sourced sequence into a
// concrete slice without requiring the producer's length in advance: it
// appends each yielded item and lets Go's slice growth handle the rest.
// The returned slice is serialized through the ordinary Seq codec. An
// ExactSizeHint producer can
// preallocate by passing sizeHint > 0; the hint is advisory only and is
// never trusted for correctness.
func CollectSeq[T any](sizeHint int, seq iter.Seq[T]) []T {
	out := make([]T, 0, max(sizeHint, 0))
	for v := range seq {
		out = append(out, v)
	}
	return out
}
