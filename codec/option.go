package codec

import "github.com/zakarumych/alkahest/wire"

// Optional is the Go value shape for formula.Option[F]: Valid reports
// presence, Value holds the payload when Valid is true and is ignored
// (and never written) otherwise.
type Optional[T any] struct {
	Valid bool
	Value T
}

// Some builds a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Valid: true, Value: v} }

// None builds an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// optionCodec implements wire.Codec[Optional[T]] for formula.Option[F]: a
// 1-byte tag followed by F's inline footprint, present payload or zero
// padding when absent.
type optionCodec[T any] struct {
	inner wire.Codec[T]
}

// Option builds the wire.Codec for formula.Option[F], wrapping the inner
// codec for F.
func Option[T any](inner wire.Codec[T]) wire.Codec[Optional[T]] {
	return optionCodec[T]{inner: inner}
}

func (c optionCodec[T]) StackSize() int { return 1 + c.inner.StackSize() }

func (c optionCodec[T]) HeapSize(v Optional[T]) int {
	if !v.Valid {
		return 0
	}
	return c.inner.HeapSize(v.Value)
}

func (c optionCodec[T]) Bare() bool { return c.inner.Bare() }

func (c optionCodec[T]) SerializeInto(w *wire.Writer, at int, v Optional[T]) error {
	if !v.Valid {
		w.PutUint8At(at, 0)
		w.ZeroAt(at+1, c.inner.StackSize())
		return nil
	}
	w.PutUint8At(at, 1)
	return c.inner.SerializeInto(w, at+1, v.Value)
}

func (c optionCodec[T]) Deserialize(r *wire.Reader, at int) (Optional[T], error) {
	if err := r.CheckBounds(at, 1); err != nil {
		return Optional[T]{}, err
	}
	tag := r.GetUint8At(at)
	if tag == 0 {
		return Optional[T]{}, nil
	}
	v, err := c.inner.Deserialize(r, at+1)
	if err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{Valid: true, Value: v}, nil
}

func (c optionCodec[T]) DeserializeUnvalidated(r *wire.Reader, at int) Optional[T] {
	tag := r.GetUint8At(at)
	if tag == 0 {
		return Optional[T]{}
	}
	return Optional[T]{Valid: true, Value: c.inner.DeserializeUnvalidated(r, at+1)}
}
