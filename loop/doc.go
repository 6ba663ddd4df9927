// Package loop runs the controller's main loop.
//
// A [Controller] owns the status table, the button detector and the
// command queue. It starts in [StateInit]; [Controller.Init] clears the
// table, shows the boot color on slot 0 and renders once, then the
// controller is [StateRunning] and [Controller.Step] is called forever.
//
// One step, in order:
//
//  1. Drain the command queue filled by the HID output-report callback.
//  2. Sample the button; a press edge types the macro.
//  3. Age every slot by the wall time since the previous step.
//  4. Render the table.
//  5. Sleep for the remainder of the cadence.
//  6. Kick the watchdog.
//
// Everything except the queue producer runs on the caller's goroutine.
// Progress is reported to an [Observer].
package loop
