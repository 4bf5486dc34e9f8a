//go:build !cgo

package bufcodec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool and zstdEncoderPool hold warmed-up coders: klauspost's
// zstd package is built for reuse and allocates on first use only.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("bufcodec: failed to create zstd decoder: %v", err))
		}
		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("bufcodec: failed to create zstd encoder: %v", err))
		}
		return e
	},
}

var _ Codec = ZstdCodec{}

// encoderLevel maps the codec's 1-22 integer level onto klauspost's
// coarser four-tier EncoderLevel enum.
func encoderLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 3:
		return zstd.SpeedDefault
	case level <= 9:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if c.level == 0 || c.level == defaultZstdLevel {
		e := zstdEncoderPool.Get().(*zstd.Encoder)
		defer zstdEncoderPool.Put(e)
		return e.EncodeAll(data, nil), nil
	}

	e, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(encoderLevel(c.level)),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		return nil, fmt.Errorf("bufcodec: failed to create zstd encoder: %w", err)
	}
	defer e.Close()
	return e.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	d := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(d)

	out, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("bufcodec: zstd decompression failed: %w", err)
	}
	return out, nil
}
