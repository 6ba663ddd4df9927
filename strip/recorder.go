package strip

import (
	"sync"

	"github.com/ardnew/neostatus/status"
)

// Recorder is an in-memory hal.Strip that keeps the last latched frame.
type Recorder struct {
	mu      sync.Mutex
	pending []status.Color
	frame   []status.Color
	latches int
}

// WriteColor appends one LED to the pending frame.
func (r *Recorder) WriteColor(red, green, blue uint8) {
	r.mu.Lock()
	r.pending = append(r.pending, status.Color{R: red, G: green, B: blue})
	r.mu.Unlock()
}

// Latch publishes the pending frame.
func (r *Recorder) Latch() {
	r.mu.Lock()
	r.frame = append(r.frame[:0], r.pending...)
	r.pending = r.pending[:0]
	r.latches++
	r.mu.Unlock()
}

// Frame returns a copy of the last latched frame.
func (r *Recorder) Frame() []status.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]status.Color(nil), r.frame...)
}

// Latches returns the number of frames latched so far.
func (r *Recorder) Latches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latches
}
