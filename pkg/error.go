package pkg

import "errors"

// Controller errors.
var (
	// ErrTimeout indicates a bounded wait expired before the transport became ready.
	ErrTimeout = errors.New("transfer timeout")

	// ErrCancelled indicates a wait was abandoned because its context ended.
	ErrCancelled = errors.New("transfer cancelled")

	// ErrProtocol indicates malformed data on a simulated wire.
	ErrProtocol = errors.New("protocol error")

	// ErrNotConfigured indicates a component was used before it was wired.
	ErrNotConfigured = errors.New("not configured")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrQueueFull indicates a command was dropped because the queue was full.
	ErrQueueFull = errors.New("command queue full")

	// ErrAlreadyRunning indicates the component is already running.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the component is not running.
	ErrNotRunning = errors.New("not running")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoDevice indicates no simulated device was found on the bus.
	ErrNoDevice = errors.New("device not present")

	// ErrWatchdogExpired indicates the loop missed its liveness deadline.
	ErrWatchdogExpired = errors.New("watchdog expired")
)

// WaitStatus describes how a blocking transport wait finished.
type WaitStatus int

// Wait status values.
const (
	WaitReady     WaitStatus = iota // Transport became ready
	WaitTimeout                     // Deadline passed first
	WaitCancelled                   // Context cancelled first
)

// String returns a string representation of the wait status.
func (s WaitStatus) String() string {
	switch s {
	case WaitReady:
		return "ready"
	case WaitTimeout:
		return "timeout"
	case WaitCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error returns the corresponding error for the wait status.
func (s WaitStatus) Error() error {
	switch s {
	case WaitReady:
		return nil
	case WaitTimeout:
		return ErrTimeout
	case WaitCancelled:
		return ErrCancelled
	default:
		return ErrProtocol
	}
}
