package pool

import (
	"io"
	"sync"
)

// LockedReader serializes reads from an underlying io.Reader so that it can
// be shared between goroutines.
type LockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

// NewLockedReader wraps r. Every concurrent sampler must read through the same
// LockedReader.
func NewLockedReader(r io.Reader) *LockedReader {
	return &LockedReader{r: r}
}

func (lr *LockedReader) Read(p []byte) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return io.ReadFull(lr.r, p)
}
