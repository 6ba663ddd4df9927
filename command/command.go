package command

import "github.com/ardnew/neostatus/status"

// Host report layout.
const (
	// ReportIDSetLED tags the vendor output report that sets one LED.
	ReportIDSetLED = 0x03

	// SetLEDReportSize is the minimum length of a set-LED report.
	SetLEDReportSize = 5
)

// Kind identifies a command.
type Kind uint8

// Command kinds.
const (
	KindSetLED Kind = iota + 1 // Set one slot's color
	KindMacro                  // Send the keyboard macro
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSetLED:
		return "set-led"
	case KindMacro:
		return "macro"
	default:
		return "unknown"
	}
}

// Command is one unit of work for the control loop.
// Index is passed through unchecked; the status table validates it.
type Command struct {
	Kind  Kind
	Index int
	Color status.Color
}

// SetLED returns a set-LED command.
func SetLED(index int, c status.Color) Command {
	return Command{Kind: KindSetLED, Index: index, Color: c}
}

// Macro returns a macro-trigger command.
func Macro() Command {
	return Command{Kind: KindMacro}
}

// DecodeReport decodes a host output report. It returns false for any
// report that is not a set-LED report of at least SetLEDReportSize bytes.
// Trailing bytes beyond the payload are ignored.
func DecodeReport(data []byte) (Command, bool) {
	if len(data) < SetLEDReportSize || data[0] != ReportIDSetLED {
		return Command{}, false
	}
	return SetLED(int(data[1]), status.Color{R: data[2], G: data[3], B: data[4]}), true
}

// EncodeReport writes a set-LED report for index and c into buf and
// returns the number of bytes written, or 0 if buf is too small.
func EncodeReport(buf []byte, index uint8, c status.Color) int {
	if len(buf) < SetLEDReportSize {
		return 0
	}
	buf[0] = ReportIDSetLED
	buf[1] = index
	buf[2] = c.R
	buf[3] = c.G
	buf[4] = c.B
	return SetLEDReportSize
}

// Apply executes a set-LED command against t. Other kinds are ignored.
func Apply(t *status.Table, cmd Command) {
	if cmd.Kind == KindSetLED {
		t.Set(cmd.Index, cmd.Color)
	}
}
