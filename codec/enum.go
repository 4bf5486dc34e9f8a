package codec

import (
	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/wire"
)

// Either is the Go value shape for formula.Enum2[A, B]: exactly one of A or
// B is populated, selected by Tag (0 or 1).
type Either[A, B any] struct {
	Tag byte
	A   A
	B   B
}

// V0 builds an Either selecting variant A.
func V0[A, B any](a A) Either[A, B] { return Either[A, B]{Tag: 0, A: a} }

// V1 builds an Either selecting variant B.
func V1[A, B any](b B) Either[A, B] { return Either[A, B]{Tag: 1, B: b} }

// enum2Codec implements wire.Codec[Either[A, B]] for formula.Enum2[FA, FB]:
// a leading tag byte, then the chosen variant's encoding, with the whole
// inline region padded to max(stack(FA), stack(FB)). Padding bytes are written
// as zero and never read back on decode.
type enum2Codec[A, B any] struct {
	a     wire.Codec[A]
	bCdc  wire.Codec[B]
	maxSS int
}

// Enum2 builds the wire.Codec for formula.Enum2[FA, FB].
func Enum2[A, B any](a wire.Codec[A], b wire.Codec[B]) wire.Codec[Either[A, B]] {
	max := a.StackSize()
	if b.StackSize() > max {
		max = b.StackSize()
	}
	return enum2Codec[A, B]{a: a, bCdc: b, maxSS: max}
}

func (c enum2Codec[A, B]) StackSize() int { return 1 + c.maxSS }

func (c enum2Codec[A, B]) HeapSize(v Either[A, B]) int {
	if v.Tag == 0 {
		return c.a.HeapSize(v.A)
	}
	return c.bCdc.HeapSize(v.B)
}

func (enum2Codec[A, B]) Bare() bool { return true }

func (c enum2Codec[A, B]) SerializeInto(w *wire.Writer, at int, v Either[A, B]) error {
	switch v.Tag {
	case 0:
		w.PutUint8At(at, 0)
		if err := c.a.SerializeInto(w, at+1, v.A); err != nil {
			return err
		}
		w.ZeroAt(at+1+c.a.StackSize(), c.maxSS-c.a.StackSize())
		return nil
	case 1:
		w.PutUint8At(at, 1)
		if err := c.bCdc.SerializeInto(w, at+1, v.B); err != nil {
			return err
		}
		w.ZeroAt(at+1+c.bCdc.StackSize(), c.maxSS-c.bCdc.StackSize())
		return nil
	default:
		return &errs.InvalidEncoding{At: at, What: "enum tag out of range"}
	}
}

func (c enum2Codec[A, B]) Deserialize(r *wire.Reader, at int) (Either[A, B], error) {
	if err := r.CheckBounds(at, c.StackSize()); err != nil {
		return Either[A, B]{}, err
	}
	tag := r.GetUint8At(at)
	switch tag {
	case 0:
		a, err := c.a.Deserialize(r, at+1)
		if err != nil {
			return Either[A, B]{}, err
		}
		return Either[A, B]{Tag: 0, A: a}, nil
	case 1:
		b, err := c.bCdc.Deserialize(r, at+1)
		if err != nil {
			return Either[A, B]{}, err
		}
		return Either[A, B]{Tag: 1, B: b}, nil
	default:
		return Either[A, B]{}, &errs.InvalidEncoding{At: at, What: "enum tag out of range"}
	}
}

func (c enum2Codec[A, B]) DeserializeUnvalidated(r *wire.Reader, at int) Either[A, B] {
	tag := r.GetUint8At(at)
	if tag == 0 {
		return Either[A, B]{Tag: 0, A: c.a.DeserializeUnvalidated(r, at+1)}
	}
	return Either[A, B]{Tag: 1, B: c.bCdc.DeserializeUnvalidated(r, at+1)}
}

// Either3 is the Go value shape for formula.Enum3[A, B, C].
type Either3[A, B, C any] struct {
	Tag byte
	A   A
	B   B
	C   C
}

func W0[A, B, C any](a A) Either3[A, B, C] { return Either3[A, B, C]{Tag: 0, A: a} }
func W1[A, B, C any](b B) Either3[A, B, C] { return Either3[A, B, C]{Tag: 1, B: b} }
func W2[A, B, C any](c C) Either3[A, B, C] { return Either3[A, B, C]{Tag: 2, C: c} }

type enum3Codec[A, B, C any] struct {
	a     wire.Codec[A]
	b     wire.Codec[B]
	c     wire.Codec[C]
	maxSS int
}

// Enum3 builds the wire.Codec for formula.Enum3[FA, FB, FC].
func Enum3[A, B, C any](a wire.Codec[A], b wire.Codec[B], c wire.Codec[C]) wire.Codec[Either3[A, B, C]] {
	max := a.StackSize()
	if b.StackSize() > max {
		max = b.StackSize()
	}
	if c.StackSize() > max {
		max = c.StackSize()
	}
	return enum3Codec[A, B, C]{a: a, b: b, c: c, maxSS: max}
}

func (e enum3Codec[A, B, C]) StackSize() int { return 1 + e.maxSS }

func (e enum3Codec[A, B, C]) HeapSize(v Either3[A, B, C]) int {
	switch v.Tag {
	case 0:
		return e.a.HeapSize(v.A)
	case 1:
		return e.b.HeapSize(v.B)
	default:
		return e.c.HeapSize(v.C)
	}
}

func (enum3Codec[A, B, C]) Bare() bool { return true }

func (e enum3Codec[A, B, C]) SerializeInto(w *wire.Writer, at int, v Either3[A, B, C]) error {
	switch v.Tag {
	case 0:
		w.PutUint8At(at, 0)
		if err := e.a.SerializeInto(w, at+1, v.A); err != nil {
			return err
		}
		w.ZeroAt(at+1+e.a.StackSize(), e.maxSS-e.a.StackSize())
		return nil
	case 1:
		w.PutUint8At(at, 1)
		if err := e.b.SerializeInto(w, at+1, v.B); err != nil {
			return err
		}
		w.ZeroAt(at+1+e.b.StackSize(), e.maxSS-e.b.StackSize())
		return nil
	case 2:
		w.PutUint8At(at, 2)
		if err := e.c.SerializeInto(w, at+1, v.C); err != nil {
			return err
		}
		w.ZeroAt(at+1+e.c.StackSize(), e.maxSS-e.c.StackSize())
		return nil
	default:
		return &errs.InvalidEncoding{At: at, What: "enum tag out of range"}
	}
}

func (e enum3Codec[A, B, C]) Deserialize(r *wire.Reader, at int) (Either3[A, B, C], error) {
	if err := r.CheckBounds(at, e.StackSize()); err != nil {
		return Either3[A, B, C]{}, err
	}
	tag := r.GetUint8At(at)
	switch tag {
	case 0:
		a, err := e.a.Deserialize(r, at+1)
		if err != nil {
			return Either3[A, B, C]{}, err
		}
		return Either3[A, B, C]{Tag: 0, A: a}, nil
	case 1:
		b, err := e.b.Deserialize(r, at+1)
		if err != nil {
			return Either3[A, B, C]{}, err
		}
		return Either3[A, B, C]{Tag: 1, B: b}, nil
	case 2:
		c, err := e.c.Deserialize(r, at+1)
		if err != nil {
			return Either3[A, B, C]{}, err
		}
		return Either3[A, B, C]{Tag: 2, C: c}, nil
	default:
		return Either3[A, B, C]{}, &errs.InvalidEncoding{At: at, What: "enum tag out of range"}
	}
}

func (e enum3Codec[A, B, C]) DeserializeUnvalidated(r *wire.Reader, at int) Either3[A, B, C] {
	tag := r.GetUint8At(at)
	switch tag {
	case 0:
		return Either3[A, B, C]{Tag: 0, A: e.a.DeserializeUnvalidated(r, at+1)}
	case 1:
		return Either3[A, B, C]{Tag: 1, B: e.b.DeserializeUnvalidated(r, at+1)}
	default:
		return Either3[A, B, C]{Tag: 2, C: e.c.DeserializeUnvalidated(r, at+1)}
	}
}
