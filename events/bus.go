// Package events broadcasts controller loop events over a kelindar/event
// dispatcher.
package events

import (
	"sync/atomic"
	"time"

	"github.com/kelindar/event"

	"github.com/ardnew/neostatus/command"
	"github.com/ardnew/neostatus/status"
)

// Bus wraps a kelindar/event dispatcher. It implements loop.Observer.
type Bus struct {
	dispatcher *event.Dispatcher
	active     atomic.Int64
	now        func() time.Time
}

// New creates a new event bus.
func New() *Bus {
	b := &Bus{
		dispatcher: event.NewDispatcher(),
		now:        time.Now,
	}
	b.active.Store(-1)
	return b
}

// Publish publishes an event to all subscribers.
func (b *Bus) Publish(ev Event) {
	switch e := ev.(type) {
	case ReportEvent:
		event.Publish(b.dispatcher, e)
	case MacroSentEvent:
		event.Publish(b.dispatcher, e)
	case SlotExpiredEvent:
		event.Publish(b.dispatcher, e)
	case FrameEvent:
		event.Publish(b.dispatcher, e)
	case RestartEvent:
		event.Publish(b.dispatcher, e)
	case ConfigErrorEvent:
		if e.Time.IsZero() {
			e.Time = b.now()
		}
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes handler to the events of its argument type and
// returns an unsubscribe function. Unknown handler types get a no-op.
// Usage: unsub := bus.Subscribe(func(e SlotExpiredEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(ReportEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(MacroSentEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(SlotExpiredEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(FrameEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(RestartEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(ConfigErrorEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		return func() {}
	}
}

// ReportReceived publishes a ReportEvent.
func (b *Bus) ReportReceived(r command.Result) {
	b.Publish(ReportEvent{Result: r.String(), Time: b.now()})
}

// MacroSent publishes a MacroSentEvent.
func (b *Bus) MacroSent(err error) {
	e := MacroSentEvent{Time: b.now()}
	if err != nil {
		e.Error = err.Error()
	}
	b.Publish(e)
}

// SlotsExpired publishes one SlotExpiredEvent per cleared slot.
func (b *Bus) SlotsExpired(m status.Mask) {
	now := b.now()
	for i := range status.Count {
		if m.Has(i) {
			b.Publish(SlotExpiredEvent{Index: i, Time: now})
		}
	}
}

// FrameRendered publishes a FrameEvent when the lit slot count changes.
func (b *Bus) FrameRendered(active int) {
	if b.active.Swap(int64(active)) == int64(active) {
		return
	}
	b.Publish(FrameEvent{Active: active, Time: b.now()})
}

// TickCompleted is not published; ticks are too frequent for the bus.
func (b *Bus) TickCompleted(time.Duration) {}

// Restarted publishes a RestartEvent.
func (b *Bus) Restarted(cause error) {
	e := RestartEvent{Time: b.now()}
	if cause != nil {
		e.Cause = cause.Error()
	}
	b.Publish(e)
}
