package codec

import "github.com/zakarumych/alkahest/wire"

// Pair, Triple, and Quad are the Go value shapes for formula.Tuple2/3/4:
// fields concatenated inline in declared order, each field's heap payload
// written to the tail in the same order.
type Pair[A, B any] struct {
	A A
	B B
}

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type tuple2Codec[A, B any] struct {
	a wire.Codec[A]
	b wire.Codec[B]
}

// Tuple2 builds the wire.Codec for formula.Tuple2[FA, FB].
func Tuple2[A, B any](a wire.Codec[A], b wire.Codec[B]) wire.Codec[Pair[A, B]] {
	return tuple2Codec[A, B]{a: a, b: b}
}

func (c tuple2Codec[A, B]) StackSize() int { return c.a.StackSize() + c.b.StackSize() }

func (c tuple2Codec[A, B]) HeapSize(v Pair[A, B]) int {
	return c.a.HeapSize(v.A) + c.b.HeapSize(v.B)
}

func (c tuple2Codec[A, B]) Bare() bool { return c.a.Bare() && c.b.Bare() }

func (c tuple2Codec[A, B]) SerializeInto(w *wire.Writer, at int, v Pair[A, B]) error {
	if err := c.a.SerializeInto(w, at, v.A); err != nil {
		return err
	}
	return c.b.SerializeInto(w, at+c.a.StackSize(), v.B)
}

func (c tuple2Codec[A, B]) Deserialize(r *wire.Reader, at int) (Pair[A, B], error) {
	a, err := c.a.Deserialize(r, at)
	if err != nil {
		return Pair[A, B]{}, err
	}
	b, err := c.b.Deserialize(r, at+c.a.StackSize())
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{A: a, B: b}, nil
}

func (c tuple2Codec[A, B]) DeserializeUnvalidated(r *wire.Reader, at int) Pair[A, B] {
	a := c.a.DeserializeUnvalidated(r, at)
	b := c.b.DeserializeUnvalidated(r, at+c.a.StackSize())
	return Pair[A, B]{A: a, B: b}
}

type tuple3Codec[A, B, C any] struct {
	a wire.Codec[A]
	b wire.Codec[B]
	c wire.Codec[C]
}

// Tuple3 builds the wire.Codec for formula.Tuple3[FA, FB, FC].
func Tuple3[A, B, C any](a wire.Codec[A], b wire.Codec[B], c wire.Codec[C]) wire.Codec[Triple[A, B, C]] {
	return tuple3Codec[A, B, C]{a: a, b: b, c: c}
}

func (t tuple3Codec[A, B, C]) StackSize() int {
	return t.a.StackSize() + t.b.StackSize() + t.c.StackSize()
}

func (t tuple3Codec[A, B, C]) HeapSize(v Triple[A, B, C]) int {
	return t.a.HeapSize(v.A) + t.b.HeapSize(v.B) + t.c.HeapSize(v.C)
}

func (t tuple3Codec[A, B, C]) Bare() bool { return t.a.Bare() && t.b.Bare() && t.c.Bare() }

func (t tuple3Codec[A, B, C]) SerializeInto(w *wire.Writer, at int, v Triple[A, B, C]) error {
	if err := t.a.SerializeInto(w, at, v.A); err != nil {
		return err
	}
	at += t.a.StackSize()
	if err := t.b.SerializeInto(w, at, v.B); err != nil {
		return err
	}
	at += t.b.StackSize()
	return t.c.SerializeInto(w, at, v.C)
}

func (t tuple3Codec[A, B, C]) Deserialize(r *wire.Reader, at int) (Triple[A, B, C], error) {
	a, err := t.a.Deserialize(r, at)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	at += t.a.StackSize()
	b, err := t.b.Deserialize(r, at)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	at += t.b.StackSize()
	c, err := t.c.Deserialize(r, at)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	return Triple[A, B, C]{A: a, B: b, C: c}, nil
}

func (t tuple3Codec[A, B, C]) DeserializeUnvalidated(r *wire.Reader, at int) Triple[A, B, C] {
	a := t.a.DeserializeUnvalidated(r, at)
	at += t.a.StackSize()
	b := t.b.DeserializeUnvalidated(r, at)
	at += t.b.StackSize()
	c := t.c.DeserializeUnvalidated(r, at)
	return Triple[A, B, C]{A: a, B: b, C: c}
}

type tuple4Codec[A, B, C, D any] struct {
	a wire.Codec[A]
	b wire.Codec[B]
	c wire.Codec[C]
	d wire.Codec[D]
}

// Tuple4 builds the wire.Codec for formula.Tuple4[FA, FB, FC, FD].
func Tuple4[A, B, C, D any](a wire.Codec[A], b wire.Codec[B], c wire.Codec[C], d wire.Codec[D]) wire.Codec[Quad[A, B, C, D]] {
	return tuple4Codec[A, B, C, D]{a: a, b: b, c: c, d: d}
}

func (t tuple4Codec[A, B, C, D]) StackSize() int {
	return t.a.StackSize() + t.b.StackSize() + t.c.StackSize() + t.d.StackSize()
}

func (t tuple4Codec[A, B, C, D]) HeapSize(v Quad[A, B, C, D]) int {
	return t.a.HeapSize(v.A) + t.b.HeapSize(v.B) + t.c.HeapSize(v.C) + t.d.HeapSize(v.D)
}

func (t tuple4Codec[A, B, C, D]) Bare() bool {
	return t.a.Bare() && t.b.Bare() && t.c.Bare() && t.d.Bare()
}

func (t tuple4Codec[A, B, C, D]) SerializeInto(w *wire.Writer, at int, v Quad[A, B, C, D]) error {
	if err := t.a.SerializeInto(w, at, v.A); err != nil {
		return err
	}
	at += t.a.StackSize()
	if err := t.b.SerializeInto(w, at, v.B); err != nil {
		return err
	}
	at += t.b.StackSize()
	if err := t.c.SerializeInto(w, at, v.C); err != nil {
		return err
	}
	at += t.c.StackSize()
	return t.d.SerializeInto(w, at, v.D)
}

func (t tuple4Codec[A, B, C, D]) Deserialize(r *wire.Reader, at int) (Quad[A, B, C, D], error) {
	a, err := t.a.Deserialize(r, at)
	if err != nil {
		return Quad[A, B, C, D]{}, err
	}
	at += t.a.StackSize()
	b, err := t.b.Deserialize(r, at)
	if err != nil {
		return Quad[A, B, C, D]{}, err
	}
	at += t.b.StackSize()
	c, err := t.c.Deserialize(r, at)
	if err != nil {
		return Quad[A, B, C, D]{}, err
	}
	at += t.c.StackSize()
	d, err := t.d.Deserialize(r, at)
	if err != nil {
		return Quad[A, B, C, D]{}, err
	}
	return Quad[A, B, C, D]{A: a, B: b, C: c, D: d}, nil
}

func (t tuple4Codec[A, B, C, D]) DeserializeUnvalidated(r *wire.Reader, at int) Quad[A, B, C, D] {
	a := t.a.DeserializeUnvalidated(r, at)
	at += t.a.StackSize()
	b := t.b.DeserializeUnvalidated(r, at)
	at += t.b.StackSize()
	c := t.c.DeserializeUnvalidated(r, at)
	at += t.c.StackSize()
	d := t.d.DeserializeUnvalidated(r, at)
	return Quad[A, B, C, D]{A: a, B: b, C: c, D: d}
}
