package loop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ardnew/neostatus/command"
	"github.com/ardnew/neostatus/device/class/hid"
	"github.com/ardnew/neostatus/device/hal"
	"github.com/ardnew/neostatus/macro"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
	"github.com/ardnew/neostatus/strip"
)

// State is the controller's lifecycle state.
type State uint32

// Controller states.
const (
	StateInit    State = iota // Not yet initialized
	StateRunning              // Stepping
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Controller is the main loop context.
type Controller struct {
	cfg   Config
	board hal.Board
	obs   Observer

	table    *status.Table
	button   *command.Button
	queue    *command.Queue
	renderer *strip.Renderer
	keyboard *hid.HID
	sender   *macro.Sender

	state   atomic.Uint32
	running atomic.Bool
	last    time.Time
}

// New creates a controller on board. A nil obs observes nothing.
//
// New registers the HID output-report callback. Reports that arrive before
// Init are discarded by it, like anything else from before a reset.
func New(cfg Config, board hal.Board, obs Observer) *Controller {
	if obs == nil {
		obs = NopObserver{}
	}
	c := &Controller{
		cfg:      cfg,
		board:    board,
		obs:      obs,
		table:    status.New(cfg.Timeout),
		button:   command.NewButton(cfg.Debounce),
		queue:    command.NewQueue(cfg.QueueDepth),
		renderer: strip.NewRenderer(board.Strip(), board.Interrupts()),
		keyboard: hid.New(board.USB(), hid.ReportDescriptor),
	}
	c.sender = macro.NewSender(c.keyboard, board, macro.CtrlAltDel)
	c.sender.Hold = cfg.Hold
	c.sender.SendTimeout = cfg.SendTimeout
	c.keyboard.SetOnOutputReport(c.handleReport)
	return c
}

// handleReport runs in the USB callback context.
func (c *Controller) handleReport(data []byte) {
	c.obs.ReportReceived(command.HandleReport(c.queue, data))
}

// Table returns the status table. It must only be read from the loop
// goroutine or while the controller is stopped.
func (c *Controller) Table() *status.Table { return c.table }

// Keyboard returns the HID interface.
func (c *Controller) Keyboard() *hid.HID { return c.keyboard }

// State returns the lifecycle state.
func (c *Controller) State() State { return State(c.state.Load()) }

// TriggerMacro queues a macro as if the button had been pressed.
// It is safe to call from any goroutine.
func (c *Controller) TriggerMacro() bool {
	return c.queue.Offer(command.Macro())
}

// Init performs the INIT state: clear every slot, set slot 0 to the boot
// color, render once. Calling it again re-runs INIT, as after a reset.
func (c *Controller) Init() {
	c.table.Reset()
	c.button.Reset()
	c.keyboard.Reset()
	c.queue.Drain(func(command.Command) {})

	c.table.Set(0, c.cfg.BootColor)
	c.render()

	c.last = c.board.Now()
	c.state.Store(uint32(StateRunning))
	pkg.LogDebug(pkg.ComponentLoop, "initialized", "boot", c.cfg.BootColor)
}

// Step runs one loop iteration. ctx bounds only the macro send.
func (c *Controller) Step(ctx context.Context) {
	start := c.board.Now()
	elapsed := start.Sub(c.last)
	c.last = start

	c.queue.Drain(func(cmd command.Command) {
		switch cmd.Kind {
		case command.KindSetLED:
			command.Apply(c.table, cmd)
		case command.KindMacro:
			c.sendMacro(ctx)
		}
	})

	if c.button.Update(c.board.Button().Get()) {
		c.sendMacro(ctx)
	}

	if expired := c.table.Tick(elapsed); expired != 0 {
		c.obs.SlotsExpired(expired)
	}
	c.render()

	work := c.board.Now().Sub(start)
	c.obs.TickCompleted(work)
	if work < c.cfg.Cadence {
		c.board.Sleep(c.cfg.Cadence - work)
	}

	c.board.Watchdog().Update()
}

// Run calls Init and then Step until ctx is done. It returns the cause of
// ctx's cancellation.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return pkg.ErrAlreadyRunning
	}
	defer c.running.Store(false)

	c.Init()
	pkg.LogInfo(pkg.ComponentLoop, "loop started", "cadence", c.cfg.Cadence)

	for ctx.Err() == nil {
		c.Step(ctx)
	}

	c.state.Store(uint32(StateInit))
	err := context.Cause(ctx)
	pkg.LogInfo(pkg.ComponentLoop, "loop stopped", "cause", err)
	return err
}

func (c *Controller) sendMacro(ctx context.Context) {
	err := c.sender.Send(ctx)
	if err != nil {
		pkg.LogWarn(pkg.ComponentLoop, "macro failed", "error", err)
	}
	c.obs.MacroSent(err)
}

func (c *Controller) render() {
	c.renderer.Render(c.table)
	c.obs.FrameRendered(c.table.Active())
}
