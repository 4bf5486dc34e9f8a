// Package pool provides a growable byte Buffer, used by
// alkahest.SerializeToVec to grow its destination slice, and pools of such
// buffers.
package pool

import "sync"

// Default and max-retained sizes for the pooled buffers, and the minimum
// growth step of Buffer.Grow.
const (
	DefaultSize    = 4 * 1024   // 4KiB
	MaxThreshold   = 256 * 1024 // discard buffers larger than this on Put
	ScratchDefault = 1024
)

// Buffer is a growable byte slice wrapper, grown geometrically like a
// standard Vec: each growth adds room for at least the current capacity,
// DefaultSize bytes, and the requested n beyond the current length,
// whichever is largest.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given starting capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying slice.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the current length.
func (b *Buffer) Len() int { return len(b.B) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.B) }

// Reset empties the buffer but keeps the backing array for reuse.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Grow ensures at least n more bytes can be appended without reallocating.
func (b *Buffer) Grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	growBy := cap(b.B)
	if growBy < DefaultSize {
		growBy = DefaultSize
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

// ExtendOrGrow extends the buffer's length by n, growing the backing array
// first if necessary. The newly exposed bytes are not zeroed beyond what
// append/copy already guarantee.
func (b *Buffer) ExtendOrGrow(n int) {
	b.Grow(n)
	b.B = b.B[:len(b.B)+n]
}

// Append appends data, growing as needed, and returns the (possibly new)
// offset at which data was written.
func (b *Buffer) Append(data []byte) int {
	at := len(b.B)
	b.B = append(b.B, data...)
	return at
}

// BufferPool pools Buffers of a given default size, discarding buffers that
// grew past maxThreshold instead of returning them to the pool.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a BufferPool.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset Buffer from the pool.
func (p *BufferPool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

// Put returns buf to the pool, unless it grew beyond the pool's threshold.
func (p *BufferPool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && buf.Cap() > p.maxThreshold {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

var defaultPool = NewBufferPool(DefaultSize, MaxThreshold)

// Get retrieves a Buffer from the package-default pool.
func Get() *Buffer { return defaultPool.Get() }

// Put returns buf to the package-default pool.
func Put(buf *Buffer) { defaultPool.Put(buf) }

var scratchPool = NewBufferPool(ScratchDefault, MaxThreshold)

// GetScratch retrieves a small scratch Buffer from a pool separate from the
// package-default one.
func GetScratch() *Buffer { return scratchPool.Get() }

// PutScratch returns a scratch Buffer obtained via GetScratch.
func PutScratch(buf *Buffer) { scratchPool.Put(buf) }
