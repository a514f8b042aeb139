package processor

import "sync"

// bufferPool hands out chunk buffers of a fixed size.
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool(size int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)

				return &buf
			},
		},
	}
}

func (b *bufferPool) get() *[]byte {
	return b.pool.Get().(*[]byte) //nolint:forcetypeassert // New always returns *[]byte
}

func (b *bufferPool) put(buf *[]byte) {
	b.pool.Put(buf)
}
