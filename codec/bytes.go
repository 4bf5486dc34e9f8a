package codec

import "github.com/zakarumych/alkahest/wire"

// bytesCodec implements wire.Codec[[]byte] for formula.Bytes: a (count,
// offset) reference pair inline, the raw byte run in the heap.
type bytesCodec struct{}

// Bytes is the wire.Codec for formula.Bytes.
var Bytes wire.Codec[[]byte] = bytesCodec{}

func (bytesCodec) StackSize() int { return 2 * wire.AddressWidth }

func (bytesCodec) HeapSize(v []byte) int { return len(v) }

func (bytesCodec) Bare() bool { return false }

func (bytesCodec) SerializeInto(w *wire.Writer, at int, v []byte) error {
	if err := wire.CheckAddr(uint64(len(v))); err != nil {
		return err
	}
	start, tailOffset, err := w.AllocHeap(len(v))
	if err != nil {
		return err
	}
	w.PutAddrAt(at, uint64(len(v)))
	w.PutAddrAt(at+wire.AddressWidth, tailOffset)
	w.PutBytesAt(start, v)
	return nil
}

func (bytesCodec) Deserialize(r *wire.Reader, at int) ([]byte, error) {
	if err := r.CheckBounds(at, 2*wire.AddressWidth); err != nil {
		return nil, err
	}
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start, err := r.HeapAt(tailOffset, int(count))
	if err != nil {
		return nil, err
	}
	out := make([]byte, count)
	copy(out, r.Bytes()[start:start+int(count)])
	return out, nil
}

func (bytesCodec) DeserializeUnvalidated(r *wire.Reader, at int) []byte {
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start := r.HeapAtUnvalidated(tailOffset)
	out := make([]byte, count)
	copy(out, r.Bytes()[start:start+int(count)])
	return out
}
