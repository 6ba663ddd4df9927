package events

import "time"

// Event type constants for kelindar/event.
const (
	TypeReport uint32 = iota + 1
	TypeMacroSent
	TypeSlotExpired
	TypeFrame
	TypeRestart
	TypeConfigError
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// ReportEvent is a host output report and what became of it.
type ReportEvent struct {
	Result string    `json:"result"`
	Time   time.Time `json:"time"`
}

// Type returns the event type identifier for ReportEvent.
func (e ReportEvent) Type() uint32 { return TypeReport }

// MacroSentEvent is one macro attempt.
type MacroSentEvent struct {
	Error string    `json:"error,omitempty"`
	Time  time.Time `json:"time"`
}

// Type returns the event type identifier for MacroSentEvent.
func (e MacroSentEvent) Type() uint32 { return TypeMacroSent }

// SlotExpiredEvent is one slot cleared by timeout.
type SlotExpiredEvent struct {
	Index int       `json:"index"`
	Time  time.Time `json:"time"`
}

// Type returns the event type identifier for SlotExpiredEvent.
func (e SlotExpiredEvent) Type() uint32 { return TypeSlotExpired }

// FrameEvent is a latched frame whose lit slot count changed.
type FrameEvent struct {
	Active int       `json:"active"`
	Time   time.Time `json:"time"`
}

// Type returns the event type identifier for FrameEvent.
func (e FrameEvent) Type() uint32 { return TypeFrame }

// RestartEvent is a loop restart after a watchdog expiry.
type RestartEvent struct {
	Cause string    `json:"cause"`
	Time  time.Time `json:"time"`
}

// Type returns the event type identifier for RestartEvent.
func (e RestartEvent) Type() uint32 { return TypeRestart }

// ConfigErrorEvent is a configuration reload that failed validation.
type ConfigErrorEvent struct {
	Error string    `json:"error"`
	Time  time.Time `json:"time"`
}

// Type returns the event type identifier for ConfigErrorEvent.
func (e ConfigErrorEvent) Type() uint32 { return TypeConfigError }
