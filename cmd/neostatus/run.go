package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ardnew/neostatus/config"
	"github.com/ardnew/neostatus/device/hal/fifo"
	"github.com/ardnew/neostatus/events"
	"github.com/ardnew/neostatus/loop"
	"github.com/ardnew/neostatus/metrics"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/pkg/prof"
	"github.com/ardnew/neostatus/watchdog"
)

var (
	cpuProfile string
	memProfile string
	pprofAddr  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the controller loop on a simulated FIFO board",
	Long: `Creates a device directory on the bus, runs INIT and then the control ` +
		`loop until interrupted. SIGUSR1 queues a macro as if the button had been ` +
		`pressed. When the software watchdog expires the loop is restarted from INIT.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, cfg)
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to file (profile builds only)")
	f.StringVar(&memProfile, "memprofile", "", "write a heap profile to file on exit (profile builds only)")
	f.StringVar(&pprofAddr, "pprof-addr", "", "serve /debug/pprof/ on address (profile builds only)")
}

func run(ctx context.Context, cfg config.Config) error {
	stopProfiling, err := startProfiling()
	if err != nil {
		return err
	}
	defer stopProfiling()

	if err := os.MkdirAll(cfg.Bus.Dir, 0o755); err != nil {
		return err
	}
	board := fifo.New(cfg.Bus.Dir)
	if err := board.Init(ctx); err != nil {
		return err
	}
	defer board.Close()

	collector := metrics.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := collector.Serve(ctx, cfg.Metrics.Addr); err != nil {
				pkg.LogError(component, "metrics server failed", "error", err)
			}
		}()
	}

	bus := events.New()
	defer logEvents(bus)()

	if configPath != "" {
		watcher := config.NewWatcher(configPath, config.WithErrorHandler(func(err error) {
			bus.Publish(events.ConfigErrorEvent{Error: err.Error()})
		}))
		watcher.OnReload(config.ApplyLogging)
		if err := watcher.Start(); err != nil {
			pkg.LogWarn(component, "config watcher disabled", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	var sd *watchdog.Systemd
	if cfg.Watchdog.Systemd {
		sd = watchdog.NewSystemd()
		sd.Ready()
		defer sd.Stopping()
	}

	ctrl := loop.New(cfg.LoopConfig(), board, loop.Observers(collector, bus))

	usr1 := make(chan os.Signal, 1)
	signal.Notify(usr1, syscall.SIGUSR1)
	defer signal.Stop(usr1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-usr1:
				if !ctrl.TriggerMacro() {
					pkg.LogWarn(component, "macro dropped, command queue full")
				}
			}
		}
	}()

	pkg.LogInfo(component, "device attached", "deviceDir", board.DeviceDir())
	for {
		err := supervise(ctx, ctrl, board, cfg, sd)
		if !errors.Is(err, pkg.ErrWatchdogExpired) || ctx.Err() != nil {
			return nil
		}
		pkg.LogWarn(component, "watchdog expired, restarting loop")
		collector.Restarted()
		bus.Restarted(err)
	}
}

// supervise runs ctrl once under a fresh software watchdog. It returns
// the reason the loop stopped.
func supervise(ctx context.Context, ctrl *loop.Controller, board *fifo.Board, cfg config.Config, sd *watchdog.Systemd) error {
	loopCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var chain watchdog.Chain
	var timer *watchdog.Timer
	if d := cfg.Watchdog.Timeout.Std(); d > 0 {
		timer = watchdog.NewTimer(d, func() { cancel(pkg.ErrWatchdogExpired) })
		chain = append(chain, timer)
	}
	if sd != nil && sd.Enabled() {
		chain = append(chain, sd)
	}
	board.SetWatchdog(chain)

	if timer != nil {
		timer.Start()
		defer timer.Stop()
	}
	return ctrl.Run(loopCtx)
}

// logEvents logs bus events at debug level and returns a function that
// unsubscribes.
func logEvents(bus *events.Bus) func() {
	unsubs := []func(){
		bus.Subscribe(func(e events.ReportEvent) {
			pkg.LogDebug(component, "report", "result", e.Result)
		}),
		bus.Subscribe(func(e events.MacroSentEvent) {
			pkg.LogDebug(component, "macro sent", "error", e.Error)
		}),
		bus.Subscribe(func(e events.SlotExpiredEvent) {
			pkg.LogDebug(component, "slot expired", "index", e.Index)
		}),
		bus.Subscribe(func(e events.FrameEvent) {
			pkg.LogDebug(component, "active slots changed", "active", e.Active)
		}),
		bus.Subscribe(func(e events.RestartEvent) {
			pkg.LogInfo(component, "loop restarted", "cause", e.Cause)
		}),
		bus.Subscribe(func(e events.ConfigErrorEvent) {
			pkg.LogWarn(component, "config reload rejected", "error", e.Error)
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func startProfiling() (func(), error) {
	if (cpuProfile != "" || memProfile != "" || pprofAddr != "") && !prof.Enabled() {
		pkg.LogWarn(component, "profiling flags ignored, rebuild with -tags profile")
		return func() {}, nil
	}
	if cpuProfile != "" {
		if err := prof.StartCPU(cpuProfile); err != nil {
			return nil, err
		}
	}
	if pprofAddr != "" {
		go func() {
			if err := prof.Serve(pprofAddr); err != nil {
				pkg.LogError(component, "pprof server failed", "error", err)
			}
		}()
	}
	return func() {
		prof.StopCPU()
		if memProfile != "" {
			if err := prof.WriteHeap(memProfile); err != nil {
				pkg.LogError(component, "write heap profile", "error", err)
			}
		}
	}, nil
}
