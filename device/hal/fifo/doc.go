// Package fifo simulates the controller board with named pipes (FIFOs).
//
// This HAL is intended for testing and simulation. The control loop runs
// against [Board] exactly as it does on hardware, while a separate
// process attaches with [Open] to play the USB host, press the button and
// watch the strip.
//
// # Architecture
//
// Each board creates a unique subdirectory under a shared bus directory:
//
//	/tmp/neostatus-bus/              # Bus directory (shared with host)
//	└── device-{uuid}/               # Device subdirectory (unique per board)
//	    ├── host_to_device           # OUT reports and IN acknowledgements
//	    ├── device_to_host           # IN (keyboard) reports
//	    ├── button                   # Button level changes
//	    └── strip                    # Latched WS2812 wire frames
//
// The directory is published by rename once all pipes exist, so its
// presence on the bus means the device is attached. [Board.Close] removes
// it.
//
// # Message Framing
//
// Every pipe carries messages of the form [type, len_lo, len_hi,
// payload...]. Payloads are at most [MaxPayload] bytes, below PIPE_BUF, so
// non-blocking writes are never interleaved.
//
// # Interrupts
//
// Reader goroutines stand in for interrupt handlers: they invoke the USB
// callbacks while holding the mutex that [hal.Interrupts] Disable takes,
// so the renderer's critical section excludes them just as on hardware.
//
// # Usage
//
//	board := fifo.New("/tmp/neostatus-bus")
//	if err := board.Init(ctx); err != nil {
//	    return err
//	}
//	defer board.Close()
//
//	ctrl := loop.New(loop.DefaultConfig(), board, nil)
//	ctrl.Run(ctx)
//
// In another process:
//
//	host, _ := fifo.Open("/tmp/neostatus-bus", "")
//	host.SendReport([]byte{0x03, 3, 255, 0, 0})
package fifo
