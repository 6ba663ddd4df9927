// Package hid implements the controller's USB Human Interface Device
// interface.
//
// The interface is a composite HID function with two reports:
//
//   - Input report 0x01: a three-key rollover keyboard used to type
//     key-combination macros on the host
//   - Output report 0x03: a vendor status report carrying a slot index
//     and an RGB color
//
// # Endpoint Protocol
//
// The interrupt IN endpoint carries one report at a time. [HID.SendReport]
// waits for the busy flag to clear, copies the report into a fixed buffer,
// sets the flag and transmits. The USB collaborator clears the flag by
// invoking the transfer-complete handler registered in [New]. Output
// reports are delivered to the callback set with [HID.SetOnOutputReport],
// which runs in interrupt context and must only enqueue work.
//
// # Zero-Allocation Design
//
// Report buffers are fixed-size arrays owned by [HID]. The report
// descriptor is stored by reference, not copied.
//
// # Usage
//
//	kbd := hid.New(board.USB(), hid.ReportDescriptor)
//	kbd.SetOnOutputReport(func(data []byte) {
//	    command.HandleReport(queue, data)
//	})
//
//	var r hid.KeyboardReport
//	r.Modifiers = hid.ModLeftCtrl
//	kbd.SendKeyboardReport(ctx, &r)
package hid
