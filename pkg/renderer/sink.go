package renderer

import (
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ImageSink receives rendered pixels. Implementations need not be safe for
// concurrent use; the renderer serializes writes.
type ImageSink interface {
	Width() int
	Height() int
	WritePixel(x, y int, c core.Color)
	Flush() error
}

// lockedSink serializes pixel writes from the worker goroutines
type lockedSink struct {
	mu   sync.Mutex
	sink ImageSink
}

func (s *lockedSink) WritePixel(x, y int, c core.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink.WritePixel(x, y, c)
}

// onGrid reports whether pixel (x, y) lies on every interval-th row or column
func onGrid(x, y, interval int) bool {
	return interval > 0 && (x%interval == 0 || y%interval == 0)
}
