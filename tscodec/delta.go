// Package tscodec supplies two alternate Seq heap encodings for numeric
// time series: DeltaSeq for monotonic or near-monotonic int64 sequences
// and GorillaSeq for smoothly varying float64 sequences, each built around
// its core compression idea rather than a byte-for-byte port of any
// reference encoder. Either formula keeps the ordinary Seq inline
// footprint (a (count, offset) reference pair); only the heap bytes
// differ, and only the element count is needed to know when to stop
// decoding. The byte length of the compressed run is never stored inline,
// matching how a varint or bit stream is normally self-delimited by the
// number of values, not by its own length.
package tscodec

import (
	"encoding/binary"

	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/wire"
)

type deltaSeqCodec struct{}

// DeltaSeq is the wire.Codec for formula.DeltaSeq / []int64: the heap
// payload is the first value zigzag-varint encoded, followed by each
// subsequent value's zigzag-varint-encoded delta from its predecessor.
var DeltaSeq wire.Codec[[]int64] = deltaSeqCodec{}

func (deltaSeqCodec) StackSize() int { return 2 * wire.AddressWidth }

func (deltaSeqCodec) HeapSize(v []int64) int { return len(encodeDelta(v)) }

func (deltaSeqCodec) Bare() bool { return false }

func (deltaSeqCodec) SerializeInto(w *wire.Writer, at int, v []int64) error {
	if err := wire.CheckAddr(uint64(len(v))); err != nil {
		return err
	}
	encoded := encodeDelta(v)
	start, tailOffset, err := w.AllocHeap(len(encoded))
	if err != nil {
		return err
	}
	w.PutAddrAt(at, uint64(len(v)))
	w.PutAddrAt(at+wire.AddressWidth, tailOffset)
	w.PutBytesAt(start, encoded)
	return nil
}

func (deltaSeqCodec) Deserialize(r *wire.Reader, at int) ([]int64, error) {
	if err := r.CheckBounds(at, 2*wire.AddressWidth); err != nil {
		return nil, err
	}
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	if tailOffset > uint64(r.Len()) {
		return nil, &errs.InvalidEncoding{At: at, What: "tail-relative offset exceeds buffer length"}
	}
	start := r.Len() - int(tailOffset)
	if start < 0 || start > r.Len() {
		return nil, &errs.InvalidEncoding{At: start, What: "DeltaSeq heap start outside buffer"}
	}
	return decodeDelta(r.Bytes()[start:], int(count))
}

func (deltaSeqCodec) DeserializeUnvalidated(r *wire.Reader, at int) []int64 {
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start := r.HeapAtUnvalidated(tailOffset)
	out, _ := decodeDelta(r.Bytes()[start:], int(count))
	return out
}

func encodeDelta(v []int64) []byte {
	if len(v) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(v)*2)
	var tmp [binary.MaxVarintLen64]byte

	prev := int64(0)
	for i, cur := range v {
		var delta int64
		if i == 0 {
			delta = cur
		} else {
			delta = cur - prev
		}
		zigzag := uint64((delta << 1) ^ (delta >> 63))
		n := binary.PutUvarint(tmp[:], zigzag)
		buf = append(buf, tmp[:n]...)
		prev = cur
	}
	return buf
}

func decodeDelta(b []byte, count int) ([]int64, error) {
	out := make([]int64, count)
	prev := int64(0)
	for i := 0; i < count; i++ {
		zigzag, n := binary.Uvarint(b)
		if n <= 0 {
			return nil, &errs.InvalidEncoding{What: "truncated DeltaSeq varint stream"}
		}
		b = b[n:]
		delta := int64(zigzag>>1) ^ -int64(zigzag&1)
		var cur int64
		if i == 0 {
			cur = delta
		} else {
			cur = prev + delta
		}
		out[i] = cur
		prev = cur
	}
	return out, nil
}
