package hid

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ardnew/neostatus/device/hal"
	"github.com/ardnew/neostatus/pkg"
)

// MaxReportSize is the maximum HID report size.
const MaxReportSize = 64

// HID is the controller's HID interface: one interrupt IN endpoint for
// keyboard reports and one interrupt OUT endpoint for status reports.
//
// Writes follow a busy-flag protocol. SendReport waits until the previous
// report has been collected, copies the new one into the endpoint buffer,
// marks the endpoint busy and hands it to the USB collaborator. The
// transfer-complete callback clears the flag.
type HID struct {
	usb hal.USB

	// Report descriptor (stored by reference)
	reportDescriptor []byte

	// HID descriptor
	hidDescriptor HIDDescriptor

	// Callbacks
	onOutputReport func(data []byte)

	// IN endpoint state, touched from interrupt context
	busy atomic.Bool

	// Buffers (zero-allocation)
	reportBuf [MaxReportSize]byte
	inBuf     [MaxReportSize]byte

	mutex sync.RWMutex
	sendM sync.Mutex
}

// New creates a HID interface on usb with the given report descriptor and
// registers its endpoint handlers.
func New(usb hal.USB, reportDescriptor []byte) *HID {
	h := &HID{
		usb:              usb,
		reportDescriptor: reportDescriptor,
		hidDescriptor: HIDDescriptor{
			HIDVersion:     0x0111, // HID 1.11
			NumDescriptors: 1,
			ReportDescLen:  uint16(len(reportDescriptor)),
		},
	}
	if usb != nil {
		usb.SetHandlers(h.handleOut, h.handleInComplete)
	}
	return h
}

// SetOnOutputReport sets the callback for output reports from the host.
// The callback runs in interrupt context and must not block.
func (h *HID) SetOnOutputReport(cb func(data []byte)) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.onOutputReport = cb
}

// ReportDescriptor returns the report descriptor.
func (h *HID) ReportDescriptor() []byte {
	return h.reportDescriptor
}

// Descriptor writes the HID class descriptor to buf.
func (h *HID) Descriptor(buf []byte) int {
	return h.hidDescriptor.MarshalTo(buf)
}

// Busy reports whether a transmitted report has not been collected yet.
func (h *HID) Busy() bool {
	return h.busy.Load()
}

// Reset abandons any in-flight IN transfer, as on bus reset.
func (h *HID) Reset() {
	h.busy.Store(false)
}

// handleOut is the OUT endpoint handler.
func (h *HID) handleOut(data []byte) {
	h.mutex.RLock()
	cb := h.onOutputReport
	h.mutex.RUnlock()

	pkg.LogDebug(pkg.ComponentHID, "output report", "len", len(data))

	if cb != nil {
		cb(data)
	}
}

// handleInComplete is the IN endpoint handler.
func (h *HID) handleInComplete() {
	h.busy.Store(false)
}

// SendReport sends an input report to the host.
//
// It blocks until the endpoint is free. The wait has no timeout of its
// own: it ends only when the host collects the previous report or ctx is
// done. A context without a deadline therefore waits forever.
func (h *HID) SendReport(ctx context.Context, data []byte) error {
	if h.usb == nil {
		return pkg.ErrNotConfigured
	}
	if len(data) > MaxReportSize {
		return pkg.ErrBufferTooSmall
	}

	h.sendM.Lock()
	defer h.sendM.Unlock()

	if status := h.waitReady(ctx); status != pkg.WaitReady {
		pkg.LogDebug(pkg.ComponentHID, "send abandoned", "status", status.String())
		return status.Error()
	}

	n := copy(h.inBuf[:], data)
	h.busy.Store(true)
	if err := h.usb.Transmit(h.inBuf[:n]); err != nil {
		h.busy.Store(false)
		return err
	}
	return nil
}

// waitReady polls the busy flag.
func (h *HID) waitReady(ctx context.Context) pkg.WaitStatus {
	done := ctx.Done()
	for h.busy.Load() {
		select {
		case <-done:
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return pkg.WaitTimeout
			}
			return pkg.WaitCancelled
		default:
		}
		runtime.Gosched()
	}
	return pkg.WaitReady
}

// SendKeyboardReport sends a keyboard report to the host.
func (h *HID) SendKeyboardReport(ctx context.Context, report *KeyboardReport) error {
	h.mutex.Lock()
	n := report.MarshalTo(h.reportBuf[:])
	var buf [KeyboardReportSize]byte
	copy(buf[:], h.reportBuf[:n])
	h.mutex.Unlock()

	if n == 0 {
		return pkg.ErrBufferTooSmall
	}
	return h.SendReport(ctx, buf[:n])
}
