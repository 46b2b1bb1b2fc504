// Package buildplan captures and interprets cargo build plans.
package buildplan

import (
	"bytes"
	"io"
	"sync"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
)

// Capture is an in-memory output sink that cargo writes its build plan to.
// It is safe for concurrent use. A writer that panics while holding the
// buffer poisons it, after which every access fails with ErrCapturePoisoned.
type Capture struct {
	mu       sync.RWMutex
	buf      bytes.Buffer
	poisoned bool
}

var _ io.Writer = (*Capture)(nil)

// NewCapture creates an empty capture buffer.
func NewCapture() *Capture {
	return &Capture{}
}

// Write appends p to the buffer.
func (c *Capture) Write(p []byte) (n int, err error) {
	err = c.locked(func() error {
		var werr error
		n, werr = c.buf.Write(p)
		return werr
	})
	return n, err
}

// locked runs fn with the buffer held exclusively. If fn panics the buffer
// is marked poisoned before the lock is released.
func (c *Capture) locked(fn func() error) error {
	c.mu.Lock()
	completed := false
	defer func() {
		if !completed {
			c.poisoned = true
		}
		c.mu.Unlock()
	}()

	if c.poisoned {
		completed = true
		return domain.ErrCapturePoisoned
	}

	err := fn()
	completed = true
	return err
}

// Bytes returns a copy of everything written so far.
func (c *Capture) Bytes() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.poisoned {
		return nil, domain.ErrCapturePoisoned
	}
	return bytes.Clone(c.buf.Bytes()), nil
}

// Run hands a fresh capture to fn as its output sink and decodes what fn
// wrote into a build plan once fn returns. The capture never outlives the
// call, whatever the exit path.
func Run(fn func(sink io.Writer) error) (*domain.BuildPlan, error) {
	capture := NewCapture()
	if err := fn(capture); err != nil {
		return nil, err
	}

	data, err := capture.Bytes()
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
