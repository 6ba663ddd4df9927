package fifo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ardnew/neostatus/device/class/hid"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
	"github.com/ardnew/neostatus/strip"
)

// Discover returns the device directories on the bus, sorted by name.
func Discover(busDir string) ([]string, error) {
	entries, err := os.ReadDir(busDir)
	if err != nil {
		return nil, fmt.Errorf("read bus dir: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasPrefix(name, devicePrefix) || strings.HasSuffix(name, ".tmp") {
			continue
		}
		dirs = append(dirs, filepath.Join(busDir, name))
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Host is the host side of one simulated device.
type Host struct {
	deviceDir string

	hostToDevice *pipe
	deviceToHost *pipe
	button       *pipe
	strip        *pipe

	closeCh chan struct{}
}

// Open attaches to the device at deviceDir. An empty deviceDir selects the
// only device on busDir.
func Open(busDir, deviceDir string) (*Host, error) {
	if deviceDir == "" {
		dirs, err := Discover(busDir)
		if err != nil {
			return nil, err
		}
		switch len(dirs) {
		case 0:
			return nil, fmt.Errorf("%s: %w", busDir, pkg.ErrNoDevice)
		case 1:
			deviceDir = dirs[0]
		default:
			return nil, fmt.Errorf("%d devices on %s, select one: %w", len(dirs), busDir, pkg.ErrInvalidParameter)
		}
	}

	h := &Host{deviceDir: deviceDir, closeCh: make(chan struct{})}
	var err error
	open := func(name string) *pipe {
		if err != nil {
			return nil
		}
		var p *pipe
		p, err = openPipe(filepath.Join(deviceDir, name), h.closeCh)
		return p
	}
	h.hostToDevice = open(fifoHostToDevice)
	h.deviceToHost = open(fifoDeviceToHost)
	h.button = open(fifoButton)
	h.strip = open(fifoStrip)
	if err != nil {
		h.Close()
		return nil, err
	}

	pkg.LogDebug(pkg.ComponentHAL, "host attached", "deviceDir", deviceDir)
	return h, nil
}

// DeviceDir returns the attached device directory.
func (h *Host) DeviceDir() string { return h.deviceDir }

// Close detaches from the device.
func (h *Host) Close() error {
	select {
	case <-h.closeCh:
	default:
		close(h.closeCh)
	}
	for _, p := range []*pipe{h.hostToDevice, h.deviceToHost, h.button, h.strip} {
		if p != nil {
			p.Close()
		}
	}
	return nil
}

// SendReport sends an output report to the device.
func (h *Host) SendReport(data []byte) error {
	return h.hostToDevice.send(msgReport, data)
}

// SetButton drives the button. The pin is active low, so pressed pulls
// the level low.
func (h *Host) SetButton(pressed bool) error {
	level := byte(1)
	if pressed {
		level = 0
	}
	return h.button.send(msgButton, []byte{level})
}

// Press holds the button for hold, then releases it.
func (h *Host) Press(ctx context.Context, hold time.Duration) error {
	if err := h.SetButton(true); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
	case <-time.After(hold):
	}
	return h.SetButton(false)
}

// ReadKeyboardReport waits for the next keyboard report, then
// acknowledges it so the device may send another.
func (h *Host) ReadKeyboardReport(ctx context.Context) (hid.KeyboardReport, error) {
	var r hid.KeyboardReport
	for {
		msgType, payload, err := h.deviceToHost.receive(ctx)
		if err != nil {
			return r, err
		}
		if msgType != msgReport {
			continue
		}
		ok := hid.UnmarshalKeyboardReport(payload, &r)
		if err := h.hostToDevice.send(msgAck, nil); err != nil {
			return r, err
		}
		if !ok {
			return r, fmt.Errorf("keyboard report % x: %w", payload, pkg.ErrProtocol)
		}
		return r, nil
	}
}

// ReadFrame waits for the next latched strip frame.
func (h *Host) ReadFrame(ctx context.Context) ([]status.Color, error) {
	for {
		msgType, payload, err := h.strip.receive(ctx)
		if err != nil {
			return nil, err
		}
		if msgType == msgFrame {
			return strip.DecodeFrame(payload)
		}
	}
}
