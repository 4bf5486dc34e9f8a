//go:build cgo

package bufcodec

import "github.com/valyala/gozstd"

// Compress compresses data with cgo-backed zstd. This build is selected
// whenever cgo is enabled (the default on most platforms); see
// zstd_pure.go for the pure-Go fallback used when CGO_ENABLED=0.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	level := c.level
	if level == 0 {
		level = defaultZstdLevel
	}
	return gozstd.CompressLevel(nil, data, level), nil
}

// Decompress decompresses data produced by Compress or by any conforming
// zstd encoder.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(nil, data)
}

var _ Codec = ZstdCodec{}
