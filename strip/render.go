package strip

import (
	"github.com/ardnew/neostatus/device/hal"
	"github.com/ardnew/neostatus/status"
)

// Renderer pushes the status table to the strip.
type Renderer struct {
	strip hal.Strip
	irq   hal.Interrupts
}

// NewRenderer creates a renderer. A nil irq renders without a critical
// section.
func NewRenderer(strip hal.Strip, irq hal.Interrupts) *Renderer {
	return &Renderer{strip: strip, irq: irq}
}

// Render writes all status.Count slots, index ascending, and latches.
//
// Asynchronous handlers are suppressed for the shift-out only; the latch
// runs with them restored.
func (r *Renderer) Render(t *status.Table) {
	var state hal.InterruptState
	if r.irq != nil {
		state = r.irq.Disable()
	}
	for i := range status.Count {
		c := t.Color(i)
		r.strip.WriteColor(c.R, c.G, c.B)
	}
	if r.irq != nil {
		r.irq.Restore(state)
	}
	r.strip.Latch()
}
