// Package bufcodec is a peripheral, opt-in layer that compresses a fully
// serialized alkahest buffer for storage or transmission. It sits one
// level above the wire/formula/codec core, sitting above it the same way
// a columnar storage codec sits above its row encoding: compression never
// changes the bytes wire.Writer produces, it only wraps the finished
// buffer. Producer and consumer must agree on which Codec was used, same
// as they must agree on the formula itself.
package bufcodec

import "fmt"

// Algorithm identifies a compression scheme a compressed buffer was
// produced with.
type Algorithm int

const (
	None Algorithm = iota
	Zstd
	S2
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a serialized alkahest buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a buffer produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtin = map[Algorithm]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// Get retrieves the built-in Codec for algorithm.
func Get(algorithm Algorithm) (Codec, error) {
	c, ok := builtin[algorithm]
	if !ok {
		return nil, fmt.Errorf("bufcodec: unsupported algorithm: %s", algorithm)
	}
	return c, nil
}
