package watchdog

import (
	"sync"
	"time"

	"github.com/ardnew/neostatus/pkg"
)

// Timer is a software watchdog. It implements hal.Watchdog.
type Timer struct {
	timeout  time.Duration
	onExpire func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	expired int
}

// NewTimer creates a stopped watchdog with the given window.
func NewTimer(timeout time.Duration, onExpire func()) *Timer {
	return &Timer{timeout: timeout, onExpire: onExpire}
}

// Timeout returns the watchdog window.
func (w *Timer) Timeout() time.Duration { return w.timeout }

// Start arms the watchdog. Starting a running watchdog re-arms it.
func (w *Timer) Start() {
	w.Update()
}

// Update re-arms the watchdog for another window.
func (w *Timer) Update() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = time.AfterFunc(w.timeout, func() { w.expire(gen) })
}

// Stop disarms the watchdog.
func (w *Timer) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

// Expirations returns how many times the watchdog has fired.
func (w *Timer) Expirations() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.expired
}

// expire ignores callbacks from timers replaced since they were armed.
func (w *Timer) expire(gen uint64) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.expired++
	w.mu.Unlock()

	pkg.LogWarn(pkg.ComponentWatchdog, "watchdog expired", "timeout", w.timeout)
	if w.onExpire != nil {
		w.onExpire()
	}
}
