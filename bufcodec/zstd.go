package bufcodec

import (
	"fmt"

	"github.com/zakarumych/alkahest/internal/options"
)

// defaultZstdLevel matches klauspost/compress's SpeedDefault tier and
// gozstd's own default.
const defaultZstdLevel = 3

// ZstdCodec compresses serialized alkahest buffers with Zstandard, trading
// compression speed for ratio. A good fit for buffers that are written
// once and read many times, or shipped over a bandwidth-constrained link.
// Its Compress/Decompress methods live in zstd_cgo.go (cgo-backed, used
// whenever cgo is enabled) or zstd_pure.go (pure Go, used when cgo is
// disabled); this file
// only declares the shared type so both build variants agree on its shape.
type ZstdCodec struct {
	level int
}

// WithLevel sets the Zstandard compression level. Values outside
// Zstandard's supported range are rejected when the option is applied.
func WithLevel(level int) options.Option[*ZstdCodec] {
	return options.New(func(c *ZstdCodec) error {
		if level < 1 || level > 22 {
			return fmt.Errorf("bufcodec: zstd level %d out of range [1, 22]", level)
		}
		c.level = level
		return nil
	})
}

// NewZstdCodec creates a Zstd Codec, defaulting to level 3 unless
// overridden with WithLevel.
func NewZstdCodec(opts ...options.Option[*ZstdCodec]) ZstdCodec {
	c := &ZstdCodec{level: defaultZstdLevel}
	if err := options.Apply(c, opts...); err != nil {
		panic(err)
	}
	return *c
}
