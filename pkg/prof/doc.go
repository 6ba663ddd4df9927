// Package prof provides on-demand profiling for the neostatus simulator.
//
// This package wraps [runtime/pprof] and is conditionally compiled using the
// "profile" build tag:
//
//	go build -tags profile ./cmd/neostatus
//
// Without the tag every function is a no-op and [Enabled] reports false, so
// the run command can keep its profiling flags in release builds.
//
// # CPU Profiling
//
//	prof.StartCPU("cpu.prof")
//	defer prof.StopCPU()
//
// Starting a second CPU profile while one is active returns
// [ErrCPUProfileActive].
//
// # Heap Snapshot
//
//	prof.WriteHeap("heap.prof")
//
// # HTTP
//
// [Serve] exposes /debug/pprof/ on the given address.
package prof
