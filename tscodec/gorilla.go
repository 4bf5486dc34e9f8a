package tscodec

import (
	"math"
	"math/bits"

	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/wire"
)

type gorillaSeqCodec struct{}

// GorillaSeq is the wire.Codec for formula.GorillaSeq / []float64: the
// first value is stored as a raw 64-bit word, each subsequent value as an
// XOR against its predecessor, bit-packed using the Gorilla leading/
// trailing-zero scheme (Pelkonen et al., "Gorilla: A Fast, Scalable,
// In-Memory Time Series Database").
var GorillaSeq wire.Codec[[]float64] = gorillaSeqCodec{}

func (gorillaSeqCodec) StackSize() int { return 2 * wire.AddressWidth }

func (gorillaSeqCodec) HeapSize(v []float64) int { return len(encodeGorilla(v)) }

func (gorillaSeqCodec) Bare() bool { return false }

func (gorillaSeqCodec) SerializeInto(w *wire.Writer, at int, v []float64) error {
	if err := wire.CheckAddr(uint64(len(v))); err != nil {
		return err
	}
	encoded := encodeGorilla(v)
	start, tailOffset, err := w.AllocHeap(len(encoded))
	if err != nil {
		return err
	}
	w.PutAddrAt(at, uint64(len(v)))
	w.PutAddrAt(at+wire.AddressWidth, tailOffset)
	w.PutBytesAt(start, encoded)
	return nil
}

func (gorillaSeqCodec) Deserialize(r *wire.Reader, at int) ([]float64, error) {
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
		return nil, &errs.InvalidEncoding{At: start, What: "GorillaSeq heap start outside buffer"}
	}
	return decodeGorilla(r.Bytes()[start:], int(count))
}

func (gorillaSeqCodec) DeserializeUnvalidated(r *wire.Reader, at int) []float64 {
	count := r.GetAddrAt(at)
	tailOffset := r.GetAddrAt(at + wire.AddressWidth)
	start := r.HeapAtUnvalidated(tailOffset)
	out, _ := decodeGorilla(r.Bytes()[start:], int(count))
	return out
}

type bitWriter struct {
	buf      []byte
	bitBuf   uint64
	bitCount uint
}

// writeBits appends the low n bits of v (n up to 64) to the stream, least
// significant bit first. It consumes v in byte-sized chunks rather than
// shifting the whole width into a single uint64 accumulator, since a write
// of n=64 (the full significant-bit field, reachable when two consecutive
// XORed values have neither a leading nor a trailing zero) combined with a
// nonzero bitCount would otherwise shift live high bits off the end of the
// accumulator and silently corrupt them.
func (w *bitWriter) writeBits(v uint64, n uint) {
	for n > 0 {
		take := 8 - w.bitCount
		if take > n {
			take = n
		}
		chunk := v & ((uint64(1) << take) - 1)
		w.bitBuf |= chunk << w.bitCount
		w.bitCount += take
		v >>= take
		n -= take
		if w.bitCount == 8 {
			w.buf = append(w.buf, byte(w.bitBuf))
			w.bitBuf = 0
			w.bitCount = 0
		}
	}
}

func (w *bitWriter) flush() {
	if w.bitCount > 0 {
		w.buf = append(w.buf, byte(w.bitBuf))
		w.bitBuf = 0
		w.bitCount = 0
	}
}

type bitReader struct {
	buf      []byte
	pos      int
	bitBuf   uint64
	bitCount uint
}

// readBits is the mirror of writeBits: it reassembles up to 64 bits by
// pulling at most one byte at a time into bitBuf (never more than 8 bits
// held at once) and placing each chunk into result at its accumulated bit
// offset, so a read of n=64 never needs a shift wider than the type.
func (r *bitReader) readBits(n uint) uint64 {
	var result uint64
	var got uint
	for got < n {
		if r.bitCount == 0 {
			var b byte
			if r.pos < len(r.buf) {
				b = r.buf[r.pos]
			}
			r.pos++
			r.bitBuf = uint64(b)
			r.bitCount = 8
		}
		take := n - got
		if take > r.bitCount {
			take = r.bitCount
		}
		result |= (r.bitBuf & ((uint64(1) << take) - 1)) << got
		r.bitBuf >>= take
		r.bitCount -= take
		got += take
	}
	return result
}

func encodeGorilla(values []float64) []byte {
	if len(values) == 0 {
		return nil
	}
	w := &bitWriter{}
	prev := math.Float64bits(values[0])
	w.writeBits(prev, 64)

	prevLeading, prevTrailing := -1, -1
	for i := 1; i < len(values); i++ {
		cur := math.Float64bits(values[i])
		xor := cur ^ prev
		if xor == 0 {
			w.writeBits(0, 1)
			prev = cur
			continue
		}
		w.writeBits(1, 1)
		leading := bits.LeadingZeros64(xor)
		if leading > 31 {
			leading = 31 // fits the 5-bit leading-zero-count field
		}
		trailing := bits.TrailingZeros64(xor)
		sig := 64 - leading - trailing

		if prevLeading != -1 && leading >= prevLeading && trailing >= prevTrailing {
			w.writeBits(0, 1)
			meaningful := 64 - prevLeading - prevTrailing
			w.writeBits(xor>>uint(prevTrailing), uint(meaningful))
		} else {
			w.writeBits(1, 1)
			w.writeBits(uint64(leading), 5)
			w.writeBits(uint64(sig-1), 6)
			w.writeBits(xor>>uint(trailing), uint(sig))
			prevLeading, prevTrailing = leading, trailing
		}
		prev = cur
	}
	w.flush()
	return w.buf
}

func decodeGorilla(b []byte, count int) ([]float64, error) {
	out := make([]float64, count)
	if count == 0 {
		return out, nil
	}
	r := &bitReader{buf: b}
	prev := r.readBits(64)
	out[0] = math.Float64frombits(prev)

	prevLeading, prevTrailing := -1, -1
	for i := 1; i < count; i++ {
		ctrl := r.readBits(1)
		if ctrl == 0 {
			out[i] = math.Float64frombits(prev)
			continue
		}
		blockCtrl := r.readBits(1)
		var leading, trailing, sig int
		if blockCtrl == 0 {
			if prevLeading == -1 {
				return nil, &errs.InvalidEncoding{What: "GorillaSeq block reuse before any block established"}
			}
			leading, trailing = prevLeading, prevTrailing
			sig = 64 - leading - trailing
		} else {
			leading = int(r.readBits(5))
			sig = int(r.readBits(6)) + 1
			trailing = 64 - leading - sig
			prevLeading, prevTrailing = leading, trailing
		}
		bitsVal := r.readBits(uint(sig))
		xor := bitsVal << uint(trailing)
		cur := prev ^ xor
		out[i] = math.Float64frombits(cur)
		prev = cur
	}
	return out, nil
}
