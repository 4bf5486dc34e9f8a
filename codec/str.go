package codec

import (
	"unicode/utf8"

	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/wire"
)

// strCodec implements wire.Codec[string] for formula.Str: wire-identical
// to Bytes, but Deserialize additionally validates UTF-8.
type strCodec struct{}

// Str is the wire.Codec for formula.Str.
var Str wire.Codec[string] = strCodec{}

func (strCodec) StackSize() int { return 2 * wire.AddressWidth }

func (strCodec) HeapSize(v string) int { return len(v) }

func (strCodec) Bare() bool { return false }

func (strCodec) SerializeInto(w *wire.Writer, at int, v string) error {
	if err := wire.CheckAddr(uint64(len(v))); err != nil {
		return err
	}
	start, tailOffset, err := w.AllocHeap(len(v))
	if err != nil {
		return err
	}
	w.PutAddrAt(at, uint64(len(v)))
	w.PutAddrAt(at+wire.AddressWidth, tailOffset)
	w.PutBytesAt(start, []byte(v))
	return nil
}

func (strCodec) Deserialize(r *wire.Reader, at int) (string, error) {
	if err := r.CheckBounds(at, 2*wire.AddressWidth); err != nil {
		return "", err
	}
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start, err := r.HeapAt(tailOffset, int(count))
	if err != nil {
		return "", err
	}
	b := r.Bytes()[start : start+int(count)]
	if !utf8.Valid(b) {
		return "", &errs.InvalidEncoding{At: start, What: "non-UTF-8 bytes in Str"}
	}
	return string(b), nil
}

func (strCodec) DeserializeUnvalidated(r *wire.Reader, at int) string {
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start := r.HeapAtUnvalidated(tailOffset)
	return string(r.Bytes()[start : start+int(count)])
}
