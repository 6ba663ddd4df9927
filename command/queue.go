package command

import "github.com/ardnew/neostatus/pkg"

// DefaultQueueDepth is the queue capacity used when none is given.
const DefaultQueueDepth = 8

// Result describes what happened to an inbound report.
type Result uint8

// Report results.
const (
	Accepted Result = iota // Decoded and queued
	Ignored                // Unrecognized or malformed
	Dropped                // Decoded but the queue was full
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Ignored:
		return "ignored"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Queue is a bounded single-consumer command queue.
// Offer is safe to call from any goroutine or interrupt handler.
type Queue struct {
	ch chan Command
}

// NewQueue creates a queue holding up to depth commands.
// A non-positive depth selects DefaultQueueDepth.
func NewQueue(depth int) *Queue {
	if depth <= 0 {
		depth = DefaultQueueDepth
	}
	return &Queue{ch: make(chan Command, depth)}
}

// Offer enqueues cmd without blocking. It returns false if the queue is full.
func (q *Queue) Offer(cmd Command) bool {
	select {
	case q.ch <- cmd:
		return true
	default:
		pkg.LogDebug(pkg.ComponentCommand, "command dropped",
			"kind", cmd.Kind.String(),
			"index", cmd.Index,
			"error", pkg.ErrQueueFull)
		return false
	}
}

// Drain calls fn for every command queued at the time of the call.
// Commands offered while Drain runs wait for the next call.
func (q *Queue) Drain(fn func(Command)) int {
	n := len(q.ch)
	for i := 0; i < n; i++ {
		fn(<-q.ch)
	}
	return n
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.ch)
}

// HandleReport decodes a host report and offers it to q.
// It never returns an error; the result is for observers only.
func HandleReport(q *Queue, data []byte) Result {
	cmd, ok := DecodeReport(data)
	if !ok {
		return Ignored
	}
	if !q.Offer(cmd) {
		return Dropped
	}
	return Accepted
}
