package bufcodec

import "github.com/klauspost/compress/s2"

// S2Codec compresses serialized buffers with S2, klauspost/compress's
// faster, lower-ratio Snappy derivative. A good fit for latency-sensitive
// call sites that would rather skip Zstd's extra CPU cost.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 Codec.
func NewS2Codec() S2Codec { return S2Codec{} }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Decode(nil, data)
}
