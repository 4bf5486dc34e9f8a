package codec

import (
	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/wire"
)

// arrayCodec implements wire.Codec[[]T] for formula.Array[F], the fixed-size
// `[F; N]` layout: N copies of F's inline footprint concatenated, each with
// its own heap payload, same ordering rule as tuples. N is
// a runtime field rather than a type-level const generic since Go does not
// support const generics; arrayCodec enforces it at SerializeInto time
// instead of at compile time.
type arrayCodec[T any] struct {
	inner wire.Codec[T]
	n     int
}

// Array builds the wire.Codec for formula.Array[F] with a fixed element
// count n. SerializeInto fails with *errs.InvalidEncoding if the slice
// length does not equal n; Deserialize always yields exactly n elements.
func Array[T any](inner wire.Codec[T], n int) wire.Codec[[]T] {
	return arrayCodec[T]{inner: inner, n: n}
}

func (c arrayCodec[T]) StackSize() int { return c.n * c.inner.StackSize() }

func (c arrayCodec[T]) HeapSize(v []T) int {
	total := 0
	for _, item := range v {
		total += c.inner.HeapSize(item)
	}
	return total
}

func (c arrayCodec[T]) Bare() bool { return c.inner.Bare() }

func (c arrayCodec[T]) SerializeInto(w *wire.Writer, at int, v []T) error {
	if len(v) != c.n {
		return &errs.InvalidEncoding{At: at, What: "array length does not match formula"}
	}
	elemStack := c.inner.StackSize()
	for i := 0; i < c.n; i++ {
		if err := c.inner.SerializeInto(w, at+i*elemStack, v[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c arrayCodec[T]) Deserialize(r *wire.Reader, at int) ([]T, error) {
	elemStack := c.inner.StackSize()
	if err := r.CheckBounds(at, c.n*elemStack); err != nil {
		return nil, err
	}
	out := make([]T, c.n)
	for i := range out {
		v, err := c.inner.Deserialize(r, at+i*elemStack)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c arrayCodec[T]) DeserializeUnvalidated(r *wire.Reader, at int) []T {
	elemStack := c.inner.StackSize()
	out := make([]T, c.n)
	for i := range out {
		out[i] = c.inner.DeserializeUnvalidated(r, at+i*elemStack)
	}
	return out
}
