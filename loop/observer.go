package loop

import (
	"time"

	"github.com/ardnew/neostatus/command"
	"github.com/ardnew/neostatus/status"
)

// Observer receives loop progress. ReportReceived runs in the HID callback
// context; the others run on the loop goroutine. Implementations must not
// block.
type Observer interface {
	// ReportReceived is called for every host output report.
	ReportReceived(r command.Result)

	// MacroSent is called after each macro attempt with its outcome.
	MacroSent(err error)

	// SlotsExpired is called when a tick cleared at least one slot.
	SlotsExpired(m status.Mask)

	// FrameRendered is called after each latch with the number of lit slots.
	FrameRendered(active int)

	// TickCompleted is called with the time spent working in one step,
	// excluding the cadence sleep.
	TickCompleted(d time.Duration)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) ReportReceived(command.Result) {}
func (NopObserver) MacroSent(error) {}
func (NopObserver) SlotsExpired(status.Mask) {}
func (NopObserver) FrameRendered(int) {}
func (NopObserver) TickCompleted(time.Duration) {}

type observers []Observer

// Observers fans out to every non-nil observer in obs.
func Observers(obs ...Observer) Observer {
	out := make(observers, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return NopObserver{}
	case 1:
		return out[0]
	}
	return out
}

func (m observers) ReportReceived(r command.Result) {
	for _, o := range m {
		o.ReportReceived(r)
	}
}

func (m observers) MacroSent(err error) {
	for _, o := range m {
		o.MacroSent(err)
	}
}

func (m observers) SlotsExpired(mask status.Mask) {
	for _, o := range m {
		o.SlotsExpired(mask)
	}
}

func (m observers) FrameRendered(active int) {
	for _, o := range m {
		o.FrameRendered(active)
	}
}

func (m observers) TickCompleted(d time.Duration) {
	for _, o := range m {
		o.TickCompleted(d)
	}
}
