// Package metrics exports controller loop metrics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ardnew/neostatus/command"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

const namespace = "neostatus"

// Collector records loop progress. It implements loop.Observer.
type Collector struct {
	reg *prometheus.Registry

	reports      *prometheus.CounterVec
	macros       *prometheus.CounterVec
	slotsExpired prometheus.Counter
	frames       prometheus.Counter
	activeSlots  prometheus.Gauge
	tickDuration prometheus.Histogram
	restarts     prometheus.Counter
}

// New creates a collector with its own registry, which also carries the
// Go runtime and process collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		reports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Host output reports by outcome",
		}, []string{"result"}),
		macros: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "macros_total",
			Help:      "Macro sequences sent by outcome",
		}, []string{"result"}),
		slotsExpired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_expired_total",
			Help:      "Status slots cleared by timeout",
		}),
		frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames latched to the strip",
		}),
		activeSlots: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_slots",
			Help:      "Status slots currently lit",
		}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Work time of one loop iteration, excluding the cadence sleep",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		restarts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Loop restarts after a watchdog expiry",
		}),
	}
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ReportReceived counts a host report.
func (c *Collector) ReportReceived(r command.Result) {
	c.reports.WithLabelValues(r.String()).Inc()
}

// MacroSent counts a macro attempt.
func (c *Collector) MacroSent(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.macros.WithLabelValues(result).Inc()
}

// SlotsExpired counts expired slots.
func (c *Collector) SlotsExpired(m status.Mask) {
	c.slotsExpired.Add(float64(m.Len()))
}

// FrameRendered counts a frame and records the lit slot count.
func (c *Collector) FrameRendered(active int) {
	c.frames.Inc()
	c.activeSlots.Set(float64(active))
}

// TickCompleted observes one iteration's work time.
func (c *Collector) TickCompleted(d time.Duration) {
	c.tickDuration.Observe(d.Seconds())
}

// Restarted counts a watchdog restart.
func (c *Collector) Restarted() {
	c.restarts.Inc()
}

// Handler returns the HTTP handler exposing the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	pkg.LogInfo(pkg.ComponentMetrics, "serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
