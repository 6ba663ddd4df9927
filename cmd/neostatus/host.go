package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardnew/neostatus/config"
	"github.com/ardnew/neostatus/device/class/hid"
	"github.com/ardnew/neostatus/device/hal/fifo"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

// openHost attaches to the selected device on the configured bus.
func openHost() (*fifo.Host, error) {
	h, err := fifo.Open(cfg.Bus.Dir, deviceDir)
	if err != nil {
		return nil, err
	}
	pkg.LogDebug(component, "attached", "deviceDir", h.DeviceDir())
	return h, nil
}

// parseIndex parses a slot index. Indices past the table are allowed so
// the device's handling of them can be exercised.
func parseIndex(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", s, pkg.ErrInvalidParameter)
	}
	return uint8(n), nil
}

// swatch renders c as a 24-bit ANSI background block followed by its hex
// form.
func swatch(c status.Color) string {
	if c.IsOff() {
		return "  off    "
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m%s", c.R, c.G, c.B, config.FormatColor(c))
}

// formatFrame renders a frame as one line of swatches.
func formatFrame(frame []status.Color) string {
	parts := make([]string, len(frame))
	for i, c := range frame {
		parts[i] = fmt.Sprintf("%d:%s", i, swatch(c))
	}
	return strings.Join(parts, " ")
}

// formatKeyboardReport renders a keyboard report as modifiers and keys.
func formatKeyboardReport(r hid.KeyboardReport) string {
	if r.IsEmpty() {
		return "released"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "mods=0x%02x keys=", r.Modifiers)
	for i, k := range r.Keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "0x%02x", k)
	}
	return sb.String()
}
