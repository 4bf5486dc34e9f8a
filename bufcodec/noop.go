package bufcodec

// NoOpCodec bypasses compression entirely, useful for benchmarking the
// core's own overhead without a compression pass on top, or for buffers
// already known to be incompressible.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a no-op Codec.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
