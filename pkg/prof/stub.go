//go:build !profile

package prof

// ErrCPUProfileActive is never returned by the stubs.
var ErrCPUProfileActive error

// Enabled reports whether the binary was built with profiling support.
func Enabled() bool { return false }

// StartCPU is a no-op without the "profile" build tag.
func StartCPU(_ string) error { return nil }

// StopCPU is a no-op without the "profile" build tag.
func StopCPU() {}

// IsCPUActive always reports false without the "profile" build tag.
func IsCPUActive() bool { return false }

// WriteHeap is a no-op without the "profile" build tag.
func WriteHeap(_ string) error { return nil }

// Serve returns immediately without the "profile" build tag.
func Serve(_ string) error { return nil }
