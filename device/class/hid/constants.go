package hid

// HID class codes.
const (
	ClassHID = 0x03 // Human Interface Device Class
)

// HID subclass codes.
const (
	SubclassNone = 0x00 // No subclass
	SubclassBoot = 0x01 // Boot Interface Subclass
)

// HID descriptor types.
const (
	DescriptorTypeHID    = 0x21 // HID descriptor
	DescriptorTypeReport = 0x22 // Report descriptor
)

// Report IDs used by the status controller.
const (
	ReportIDKeyboard = 0x01 // Keyboard input report
	ReportIDStatus   = 0x03 // Vendor output report: index, R, G, B
)

// HIDDescriptor is the HID class descriptor.
type HIDDescriptor struct {
	HIDVersion     uint16 // HID specification release number (0x0111 for 1.11)
	CountryCode    uint8  // Country code
	NumDescriptors uint8  // Number of class descriptors (at least 1)
	ReportDescLen  uint16 // Total size of report descriptor
}

// HIDDescriptorSize is the size of the HID descriptor.
const HIDDescriptorSize = 9

// MarshalTo writes the HID descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *HIDDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < HIDDescriptorSize {
		return 0
	}
	buf[0] = HIDDescriptorSize
	buf[1] = DescriptorTypeHID
	buf[2] = byte(d.HIDVersion)
	buf[3] = byte(d.HIDVersion >> 8)
	buf[4] = d.CountryCode
	buf[5] = d.NumDescriptors
	buf[6] = DescriptorTypeReport
	buf[7] = byte(d.ReportDescLen)
	buf[8] = byte(d.ReportDescLen >> 8)
	return HIDDescriptorSize
}

// Keyboard modifier bits.
const (
	ModLeftCtrl   = 1 << 0
	ModLeftShift  = 1 << 1
	ModLeftAlt    = 1 << 2
	ModLeftGUI    = 1 << 3
	ModRightCtrl  = 1 << 4
	ModRightShift = 1 << 5
	ModRightAlt   = 1 << 6
	ModRightGUI   = 1 << 7
)

// Keyboard keycodes (USB HID Usage Tables) used by macros.
const (
	KeyNone      = 0x00
	KeyEnter     = 0x28
	KeyEscape    = 0x29
	KeyBackspace = 0x2A
	KeyTab       = 0x2B
	KeySpace     = 0x2C
	KeyF1        = 0x3A
	KeyF12       = 0x45
	KeyInsert    = 0x49
	KeyHome      = 0x4A
	KeyDelete    = 0x4C
	KeyEnd       = 0x4D
)

// ReportDescriptor describes the two reports exchanged with the host:
// a 3-key-rollover keyboard input report and the vendor-defined status
// output report.
var ReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x85, ReportIDKeyboard, // Report ID (1)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0xE0, //   Usage Minimum (Left Control)
	0x29, 0xE7, //   Usage Maximum (Right GUI)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1)
	0x95, 0x08, //   Report Count (8)
	0x81, 0x02, //   Input (Data, Variable, Absolute) - Modifier byte
	0x95, 0x01, //   Report Count (1)
	0x75, 0x08, //   Report Size (8)
	0x81, 0x01, //   Input (Constant) - Reserved byte
	0x95, 0x03, //   Report Count (3)
	0x75, 0x08, //   Report Size (8)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xFF, 0x00, // Logical Maximum (255)
	0x19, 0x00, //   Usage Minimum (0)
	0x2A, 0xFF, 0x00, // Usage Maximum (255)
	0x81, 0x00, //   Input (Data, Array) - Key array
	0xC0, // End Collection
	0x06, 0x00, 0xFF, // Usage Page (Vendor Defined 0xFF00)
	0x09, 0x01, // Usage (Vendor Usage 1)
	0xA1, 0x01, // Collection (Application)
	0x85, ReportIDStatus, // Report ID (3)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xFF, 0x00, // Logical Maximum (255)
	0x75, 0x08, //   Report Size (8)
	0x95, 0x04, //   Report Count (4)
	0x09, 0x02, //   Usage (Vendor Usage 2)
	0x91, 0x02, //   Output (Data, Variable, Absolute) - index, R, G, B
	0xC0, // End Collection
}

// KeyboardKeys is the rollover of the keyboard report.
const KeyboardKeys = 3

// KeyboardReport is a keyboard input report.
type KeyboardReport struct {
	Modifiers uint8               // Modifier key state
	Keys      [KeyboardKeys]uint8 // Simultaneous key codes
}

// KeyboardReportSize is the size of a keyboard report in bytes:
// report ID, modifiers, reserved, keys.
const KeyboardReportSize = 3 + KeyboardKeys

// MarshalTo writes the keyboard report to buf.
func (r *KeyboardReport) MarshalTo(buf []byte) int {
	if len(buf) < KeyboardReportSize {
		return 0
	}
	buf[0] = ReportIDKeyboard
	buf[1] = r.Modifiers
	buf[2] = 0
	copy(buf[3:KeyboardReportSize], r.Keys[:])
	return KeyboardReportSize
}

// UnmarshalKeyboardReport parses a keyboard report produced by MarshalTo.
func UnmarshalKeyboardReport(data []byte, out *KeyboardReport) bool {
	if len(data) < KeyboardReportSize || data[0] != ReportIDKeyboard {
		return false
	}
	out.Modifiers = data[1]
	copy(out.Keys[:], data[3:KeyboardReportSize])
	return true
}

// Clear resets the keyboard report to all keys released.
func (r *KeyboardReport) Clear() {
	r.Modifiers = 0
	r.Keys = [KeyboardKeys]uint8{}
}

// IsEmpty reports whether no key or modifier is held.
func (r *KeyboardReport) IsEmpty() bool {
	return r.Modifiers == 0 && r.Keys == [KeyboardKeys]uint8{}
}

// SetKey sets a key in the key array.
// Returns false if no slot is available.
func (r *KeyboardReport) SetKey(key uint8) bool {
	for i := range r.Keys {
		if r.Keys[i] == 0 {
			r.Keys[i] = key
			return true
		}
		if r.Keys[i] == key {
			return true // Already set
		}
	}
	return false
}

// ClearKey removes a key from the key array.
func (r *KeyboardReport) ClearKey(key uint8) {
	for i := range r.Keys {
		if r.Keys[i] == key {
			// Shift remaining keys
			for j := i; j < len(r.Keys)-1; j++ {
				r.Keys[j] = r.Keys[j+1]
			}
			r.Keys[len(r.Keys)-1] = 0
			return
		}
	}
}
