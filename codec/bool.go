package codec

import (
	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/wire"
)

// boolCodec implements wire.Codec[bool] for formula.Bool. strict selects
// between strict mode, which rejects any byte other than 0 or 1 as
// InvalidEncoding, and lenient mode, which decodes any nonzero byte as
// true. The default, Bool, is strict.
type boolCodec struct {
	strict bool
}

func (boolCodec) StackSize() int    { return 1 }
func (boolCodec) HeapSize(bool) int { return 0 }
func (boolCodec) Bare() bool        { return true }

func (boolCodec) SerializeInto(w *wire.Writer, at int, v bool) error {
	if v {
		w.PutUint8At(at, 1)
	} else {
		w.PutUint8At(at, 0)
	}
	return nil
}

func (c boolCodec) Deserialize(r *wire.Reader, at int) (bool, error) {
	if err := r.CheckBounds(at, 1); err != nil {
		return false, err
	}
	b := r.GetUint8At(at)
	if c.strict && b > 1 {
		return false, &errs.InvalidEncoding{At: at, What: "boolean outside {0,1}"}
	}
	return b != 0, nil
}

func (boolCodec) DeserializeUnvalidated(r *wire.Reader, at int) bool {
	return r.GetUint8At(at) != 0
}

// Bool is the strict-mode wire.Codec for formula.Bool: only 0 and 1 decode
// successfully.
var Bool = boolCodec{strict: true}

// BoolLenient is the explicit lenient-mode counterpart: any nonzero byte
// decodes as true. Producers and consumers must agree on which codec they
// use, same as any other formula.
var BoolLenient = boolCodec{strict: false}
