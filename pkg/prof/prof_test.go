//go:build profile

package prof

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStartCPU_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")

	if err := StartCPU(path); err != nil {
		t.Fatalf("StartCPU() error = %v, want nil", err)
	}
	defer StopCPU()

	if !IsCPUActive() {
		t.Error("IsCPUActive() = false, want true")
	}
}

func TestStartCPU_FailFastWhenActive(t *testing.T) {
	if err := StartCPU(filepath.Join(t.TempDir(), "cpu.prof")); err != nil {
		t.Fatalf("StartCPU() error = %v, want nil", err)
	}
	defer StopCPU()

	err := StartCPU(filepath.Join(t.TempDir(), "cpu2.prof"))
	if !errors.Is(err, ErrCPUProfileActive) {
		t.Errorf("StartCPU() error = %v, want %v", err, ErrCPUProfileActive)
	}
}

func TestStopCPU_Idempotent(t *testing.T) {
	StopCPU()
	StopCPU()
	if IsCPUActive() {
		t.Error("IsCPUActive() = true after StopCPU")
	}
}

func TestWriteHeap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.prof")
	if err := WriteHeap(path); err != nil {
		t.Fatalf("WriteHeap() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("heap profile is empty")
	}
}
