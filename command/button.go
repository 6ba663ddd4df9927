package command

// Button detects press edges on an active-low input.
//
// With stable == 0 the detector is level driven: every not-pressed to
// pressed transition between two consecutive samples is an edge, and
// contact bounce is left to the hardware. With stable > 0 a new level must
// be seen on stable consecutive samples before it is accepted.
type Button struct {
	last    bool // last accepted pressed state
	pending bool // candidate pressed state
	count   int  // consecutive samples of pending
	stable  int
}

// NewButton creates an edge detector that starts in the released state.
func NewButton(stable int) *Button {
	if stable < 0 {
		stable = 0
	}
	return &Button{stable: stable}
}

// Update samples the pin level (true = electrically high) and reports
// whether a press edge occurred.
func (b *Button) Update(level bool) bool {
	return b.UpdatePressed(!level)
}

// UpdatePressed samples the logical pressed state directly.
func (b *Button) UpdatePressed(pressed bool) bool {
	if b.stable == 0 {
		edge := pressed && !b.last
		b.last = pressed
		return edge
	}

	if pressed == b.last {
		b.count = 0
		return false
	}
	if pressed != b.pending {
		b.pending = pressed
		b.count = 0
	}
	b.count++
	if b.count < b.stable {
		return false
	}
	b.last = pressed
	b.count = 0
	return pressed
}

// Pressed returns the last accepted pressed state.
func (b *Button) Pressed() bool {
	return b.last
}

// Reset forgets the last state, as on power-up.
func (b *Button) Reset() {
	b.last = false
	b.pending = false
	b.count = 0
}
