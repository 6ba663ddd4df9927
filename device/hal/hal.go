package hal

//go:generate mockgen -destination halmock/halmock.go -package halmock . Strip,Interrupts,Pin,Watchdog,Delay,Clock,USB

import (
	"context"
	"time"
)

// Strip transmits colors to an addressable LED strip in its native encoding.
type Strip interface {
	// WriteColor shifts out one LED's color. Successive calls address
	// successive LEDs, starting at the one nearest the controller.
	WriteColor(r, g, b uint8)

	// Latch ends the frame so the strip displays what was shifted out.
	Latch()
}

// InterruptState is the opaque value returned by Interrupts.Disable.
type InterruptState uintptr

// Interrupts guards the strip's timing-critical shift-out.
type Interrupts interface {
	// Disable suppresses asynchronous handlers and returns the state
	// needed to restore them.
	Disable() InterruptState

	// Restore re-enables asynchronous handlers.
	Restore(state InterruptState)
}

// Pin is a digital input.
type Pin interface {
	// Get returns the electrical level, true for high.
	Get() bool
}

// Watchdog is the external liveness service. If Update is not called
// within its window the whole controller is reset.
type Watchdog interface {
	Update()
}

// Delay blocks the caller.
type Delay interface {
	Sleep(d time.Duration)
}

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// USB is the HID report channel.
//
// The USB stack calls the handlers registered with SetHandlers from
// interrupt context: out with each output report received from the host,
// inComplete when the last Transmit has been collected by the host.
type USB interface {
	// SetHandlers registers the report callbacks.
	SetHandlers(out func(data []byte), inComplete func())

	// Transmit queues one input report for the host and returns without
	// waiting for it to be collected.
	Transmit(data []byte) error
}

// Board bundles the collaborators the control loop needs.
//
// Implementations exist for TinyGo targets (see examples/tinygo-device) and
// for simulation (see [github.com/ardnew/neostatus/device/hal/fifo]).
type Board interface {
	// Init prepares the hardware. It is called once before the loop's
	// INIT state.
	Init(ctx context.Context) error

	Strip() Strip
	Interrupts() Interrupts
	Button() Pin
	Watchdog() Watchdog
	USB() USB
	Delay
	Clock
}

// SystemClock is a Clock and Delay backed by the time package.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep calls time.Sleep.
func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
