package fifo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ardnew/neostatus/device/hal"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
	"github.com/ardnew/neostatus/strip"
)

// Board implements hal.Board over named pipes.
//
// Interrupt context is simulated by reader goroutines. They run the USB
// handlers while holding the same mutex Disable takes, so the strip
// shift-out is a real critical section.
type Board struct {
	hal.SystemClock

	busDir    string
	deviceDir string
	uuid      string

	hostToDevice *pipe
	deviceToHost *pipe
	button       *pipe
	strip        *pipe

	encoder *strip.Encoder
	usb     usbPort
	pin     pin
	wdt     watchdogSlot

	irq sync.Mutex

	mutex     sync.RWMutex
	initDone  bool
	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a board that will attach to the bus at busDir.
func New(busDir string) *Board {
	b := &Board{
		busDir:  busDir,
		closeCh: make(chan struct{}),
	}
	b.usb.board = b
	b.encoder = strip.NewEncoder(frameWriter{b}, status.Count)
	b.pin.level.Store(true) // pulled up
	return b
}

// Init creates the device directory and its pipes and starts the reader
// goroutines. The directory appearing on the bus is the connect signal.
func (b *Board) Init(ctx context.Context) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.initDone {
		return pkg.ErrAlreadyRunning
	}

	b.uuid = uuid.NewString()
	dir := filepath.Join(b.busDir, devicePrefix+b.uuid)
	staging := dir + ".tmp"

	if err := os.MkdirAll(staging, 0o755); err != nil {
		return fmt.Errorf("create device dir: %w", err)
	}
	for _, name := range fifoNames {
		if err := createFIFO(filepath.Join(staging, name)); err != nil {
			os.RemoveAll(staging)
			return err
		}
	}
	// Publish the directory only once it is complete.
	if err := os.Rename(staging, dir); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("publish device dir: %w", err)
	}
	b.deviceDir = dir

	var err error
	open := func(name string) *pipe {
		if err != nil {
			return nil
		}
		var p *pipe
		p, err = openPipe(filepath.Join(dir, name), b.closeCh)
		return p
	}
	b.hostToDevice = open(fifoHostToDevice)
	b.deviceToHost = open(fifoDeviceToHost)
	b.button = open(fifoButton)
	b.strip = open(fifoStrip)
	if err != nil {
		b.cleanup()
		return err
	}
	b.strip.writeTimeout = frameWriteTimeout

	b.wg.Add(2)
	go b.readHostToDevice()
	go b.readButton()

	b.initDone = true
	pkg.LogInfo(pkg.ComponentHAL, "fifo board initialized",
		"busDir", b.busDir,
		"deviceDir", b.deviceDir,
		"uuid", b.uuid)
	return nil
}

// Close stops the reader goroutines, closes the pipes and removes the
// device directory.
func (b *Board) Close() error {
	b.closeOnce.Do(func() { close(b.closeCh) })
	b.wg.Wait()

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.cleanup()
	b.initDone = false
	pkg.LogInfo(pkg.ComponentHAL, "fifo board closed")
	return nil
}

func (b *Board) cleanup() {
	for _, p := range []**pipe{&b.hostToDevice, &b.deviceToHost, &b.button, &b.strip} {
		if *p != nil {
			(*p).Close()
			*p = nil
		}
	}
	if b.deviceDir != "" {
		os.RemoveAll(b.deviceDir)
	}
}

// DeviceDir returns the device subdirectory path.
func (b *Board) DeviceDir() string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.deviceDir
}

// UUID returns the device's unique identifier.
func (b *Board) UUID() string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.uuid
}

// Strip returns the WS2812 encoder writing frames to the strip pipe.
func (b *Board) Strip() hal.Strip { return b.encoder }

// Interrupts returns the board's simulated interrupt controller.
func (b *Board) Interrupts() hal.Interrupts { return (*irqController)(b) }

// Button returns the simulated button pin.
func (b *Board) Button() hal.Pin { return &b.pin }

// Watchdog returns the watchdog set with SetWatchdog, or a no-op.
func (b *Board) Watchdog() hal.Watchdog { return &b.wdt }

// SetWatchdog sets the watchdog the loop kicks.
func (b *Board) SetWatchdog(w hal.Watchdog) { b.wdt.set(w) }

// USB returns the simulated HID endpoint pair.
func (b *Board) USB() hal.USB { return &b.usb }

// readHostToDevice delivers OUT reports and IN acknowledgements.
func (b *Board) readHostToDevice() {
	defer b.wg.Done()
	ctx := context.Background()
	for {
		msgType, payload, err := b.hostToDevice.receive(ctx)
		if err != nil {
			if !errors.Is(err, pkg.ErrCancelled) {
				pkg.LogWarn(pkg.ComponentHAL, "host_to_device read failed", "error", err)
			}
			return
		}

		switch msgType {
		case msgReport:
			b.irq.Lock()
			b.usb.deliver(payload)
			b.irq.Unlock()
		case msgAck:
			b.irq.Lock()
			b.usb.complete()
			b.irq.Unlock()
		default:
			pkg.LogDebug(pkg.ComponentHAL, "unexpected message", "type", msgType)
		}
	}
}

// readButton tracks the simulated button level.
func (b *Board) readButton() {
	defer b.wg.Done()
	ctx := context.Background()
	for {
		msgType, payload, err := b.button.receive(ctx)
		if err != nil {
			if !errors.Is(err, pkg.ErrCancelled) {
				pkg.LogWarn(pkg.ComponentHAL, "button read failed", "error", err)
			}
			return
		}
		if msgType == msgButton && len(payload) >= 1 {
			b.pin.level.Store(payload[0] != 0)
			pkg.LogDebug(pkg.ComponentHAL, "button level", "high", payload[0] != 0)
		}
	}
}

// irqController implements hal.Interrupts with the board's handler mutex.
type irqController Board

func (c *irqController) Disable() hal.InterruptState {
	c.irq.Lock()
	return 0
}

func (c *irqController) Restore(hal.InterruptState) {
	c.irq.Unlock()
}

// usbPort implements hal.USB over the report pipes.
type usbPort struct {
	board      *Board
	mu         sync.RWMutex
	out        func([]byte)
	inComplete func()
}

func (u *usbPort) SetHandlers(out func([]byte), inComplete func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.out = out
	u.inComplete = inComplete
}

func (u *usbPort) Transmit(data []byte) error {
	p := u.board.pipe(func(b *Board) *pipe { return b.deviceToHost })
	if p == nil {
		return pkg.ErrNotConfigured
	}
	return p.send(msgReport, data)
}

func (u *usbPort) deliver(data []byte) {
	u.mu.RLock()
	out := u.out
	u.mu.RUnlock()
	if out != nil {
		out(data)
	}
}

func (u *usbPort) complete() {
	u.mu.RLock()
	done := u.inComplete
	u.mu.RUnlock()
	if done != nil {
		done()
	}
}

// pin implements hal.Pin.
type pin struct {
	level atomic.Bool
}

func (p *pin) Get() bool { return p.level.Load() }

// watchdogSlot forwards to a replaceable watchdog.
type watchdogSlot struct {
	w atomic.Pointer[hal.Watchdog]
}

func (s *watchdogSlot) set(w hal.Watchdog) {
	if w == nil {
		s.w.Store(nil)
		return
	}
	s.w.Store(&w)
}

func (s *watchdogSlot) Update() {
	if w := s.w.Load(); w != nil {
		(*w).Update()
	}
}

// pipe returns one of the board's pipes, nil before Init or after Close.
func (b *Board) pipe(which func(*Board) *pipe) *pipe {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return which(b)
}

// frameWriter sends each encoded frame as one message.
type frameWriter struct {
	b *Board
}

func (w frameWriter) Write(frame []byte) (int, error) {
	p := w.b.pipe(func(b *Board) *pipe { return b.strip })
	if p == nil {
		return 0, pkg.ErrNotConfigured
	}
	if err := p.send(msgFrame, frame); err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return len(frame), nil
		}
		return 0, err
	}
	return len(frame), nil
}

// Compile-time interface check
var _ hal.Board = (*Board)(nil)
