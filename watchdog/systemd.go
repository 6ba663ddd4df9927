package watchdog

import (
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/ardnew/neostatus/pkg"
)

// Systemd forwards watchdog kicks to the service manager. It implements
// hal.Watchdog; without a configured systemd watchdog every call is a
// no-op.
type Systemd struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	notify   func(state string) (bool, error)
}

// NewSystemd reads WATCHDOG_USEC from the environment. Kicks are rate
// limited to half the configured window.
func NewSystemd() *Systemd {
	s := &Systemd{
		now:    time.Now,
		notify: func(state string) (bool, error) { return daemon.SdNotify(false, state) },
	}
	if d, err := daemon.SdWatchdogEnabled(false); err == nil && d > 0 {
		s.interval = d / 2
	}
	return s
}

// Enabled reports whether systemd expects watchdog kicks.
func (s *Systemd) Enabled() bool { return s.interval > 0 }

// Ready tells systemd the service finished starting.
func (s *Systemd) Ready() {
	if _, err := s.notify(daemon.SdNotifyReady); err != nil {
		pkg.LogDebug(pkg.ComponentWatchdog, "sd_notify ready failed", "error", err)
	}
}

// Stopping tells systemd the service is shutting down.
func (s *Systemd) Stopping() {
	if _, err := s.notify(daemon.SdNotifyStopping); err != nil {
		pkg.LogDebug(pkg.ComponentWatchdog, "sd_notify stopping failed", "error", err)
	}
}

// Update kicks the systemd watchdog.
func (s *Systemd) Update() {
	if s.interval <= 0 {
		return
	}
	now := s.now()
	if now.Sub(s.last) < s.interval {
		return
	}
	s.last = now
	if _, err := s.notify(daemon.SdNotifyWatchdog); err != nil {
		pkg.LogDebug(pkg.ComponentWatchdog, "sd_notify watchdog failed", "error", err)
	}
}

// Chain kicks every watchdog in order.
type Chain []interface{ Update() }

// Update kicks every watchdog.
func (c Chain) Update() {
	for _, w := range c {
		w.Update()
	}
}
