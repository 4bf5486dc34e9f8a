package bufcodec

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances: they carry an internal
// hash table that is expensive to re-zero per call.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec compresses serialized buffers with LZ4 block compression.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 Codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Decompress grows its scratch buffer geometrically since LZ4 block
// format carries no explicit decompressed-size header; the encoded
// message length is the caller's responsibility to track (e.g. alongside
// the formula's own serialized_size) if an exact-size allocation matters.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}
			return nil, err
		}
		return buf[:n], nil
	}
	return nil, lz4.ErrInvalidSourceShortBuffer
}
