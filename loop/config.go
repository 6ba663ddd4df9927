package loop

import (
	"fmt"
	"time"

	"github.com/ardnew/neostatus/command"
	"github.com/ardnew/neostatus/macro"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

// DefaultCadence is the loop period.
const DefaultCadence = 20 * time.Millisecond

// Config holds the loop parameters.
type Config struct {
	Cadence     time.Duration // Loop period
	Timeout     time.Duration // Slot lifetime after a set
	BootColor   status.Color  // Color of slot 0 after INIT
	QueueDepth  int           // Command queue capacity
	Debounce    int           // Stable samples required per button level, 0 disables
	Hold        time.Duration // Macro hold time
	SendTimeout time.Duration // Per-report macro timeout, 0 waits forever
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Cadence:    DefaultCadence,
		Timeout:    status.DefaultTimeout,
		BootColor:  status.Orange,
		QueueDepth: command.DefaultQueueDepth,
		Hold:       macro.DefaultHold,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Cadence <= 0:
		return fmt.Errorf("cadence %v: %w", c.Cadence, pkg.ErrInvalidParameter)
	case c.Timeout <= 0:
		return fmt.Errorf("timeout %v: %w", c.Timeout, pkg.ErrInvalidParameter)
	case c.QueueDepth < 0:
		return fmt.Errorf("queue depth %d: %w", c.QueueDepth, pkg.ErrInvalidParameter)
	case c.Debounce < 0:
		return fmt.Errorf("debounce %d: %w", c.Debounce, pkg.ErrInvalidParameter)
	case c.Hold < 0:
		return fmt.Errorf("hold %v: %w", c.Hold, pkg.ErrInvalidParameter)
	case c.SendTimeout < 0:
		return fmt.Errorf("send timeout %v: %w", c.SendTimeout, pkg.ErrInvalidParameter)
	}
	return nil
}
