// Package macro types fixed key combinations on the host through the HID
// keyboard report.
//
// A [Sequence] is pressed key by key, held, then released in reverse
// order. Every step is its own keyboard report, so the host sees the
// combination build up and tear down the way a person would type it.
package macro
