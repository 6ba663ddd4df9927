// Package hal defines the hardware contracts consumed by the neostatus
// control loop.
//
// The loop never touches registers. Everything outside its own state is
// reached through the small interfaces in this package:
//
//   - [Strip]: shift out one RGB triple, then latch the frame
//   - [Interrupts]: an uninterruptible window around the shift-out
//   - [Pin]: the reboot button level
//   - [Watchdog]: the once-per-iteration liveness reset
//   - [USB]: the HID report channel with interrupt-style callbacks
//   - [Delay] and [Clock]: blocking sleep and time of day
//
// A [Board] bundles them for one target.
//
// # Implementing a Board
//
//  1. Create a type that returns each collaborator from its accessor
//  2. Configure pins, strip output and USB in Init()
//  3. Call the USB handlers from the platform's endpoint interrupts
//  4. Make Interrupts.Disable actually block those handlers
//
// # Example
//
//	type MyBoard struct {
//	    // Platform-specific fields
//	}
//
//	func (b *MyBoard) Init(ctx context.Context) error {
//	    // Configure strip pin, button pull-up, USB
//	    return nil
//	}
//
//	// ... implement remaining Board methods
//
// A FIFO-based board for simulation is available in
// [github.com/ardnew/neostatus/device/hal/fifo].
package hal
