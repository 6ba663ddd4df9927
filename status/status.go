package status

import "time"

// Count is the number of LEDs on the strip.
const Count = 10

// DefaultTimeout is the lifetime given to a slot by Set.
const DefaultTimeout = 5000 * time.Millisecond

// Color is a raw 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Off    = Color{}
	Red    = Color{R: 0xFF}
	Green  = Color{G: 0xFF}
	Blue   = Color{B: 0xFF}
	Orange = Color{R: 0xFF, G: 0xFF / 3}
)

// IsOff reports whether all channels are zero.
func (c Color) IsOff() bool {
	return c == Off
}

// Slot is one LED's logical state.
type Slot struct {
	Color     Color
	Remaining time.Duration
}

// Active reports whether the slot has lifetime left.
func (s Slot) Active() bool {
	return s.Remaining > 0
}

// Mask is a set of slot indices, bit i for slot i.
type Mask uint16

// Mask must be able to hold every slot.
var _ [16 - Count]struct{}

// Has reports whether index i is in the mask.
func (m Mask) Has(i int) bool {
	return i >= 0 && i < Count && m&(1<<uint(i)) != 0
}

// Len returns the number of indices in the mask.
func (m Mask) Len() int {
	n := 0
	for v := m; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Table is the fixed-size array of LED slots.
type Table struct {
	slots   [Count]Slot
	timeout time.Duration
}

// New creates a cleared table whose Set calls grant timeout of lifetime.
// A non-positive timeout selects DefaultTimeout.
func New(timeout time.Duration) *Table {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Table{timeout: timeout}
}

// Timeout returns the lifetime granted by Set.
func (t *Table) Timeout() time.Duration {
	return t.timeout
}

// Reset clears every slot.
func (t *Table) Reset() {
	for i := range t.slots {
		t.clear(i)
	}
}

// Set overwrites the slot's color and restarts its lifetime.
// Out-of-range indices are ignored.
func (t *Table) Set(index int, c Color) {
	if index < 0 || index >= Count {
		return
	}
	t.slots[index] = Slot{Color: c, Remaining: t.timeout}
}

// Clear turns the slot off. Out-of-range indices are ignored.
func (t *Table) Clear(index int) {
	if index < 0 || index >= Count {
		return
	}
	t.clear(index)
}

func (t *Table) clear(index int) {
	t.slots[index] = Slot{}
}

// Tick advances every live slot by elapsed and returns the slots that
// expired in this pass. A slot whose remaining lifetime is not more than
// elapsed is cleared; the others are decremented. Negative elapsed counts
// as zero.
func (t *Table) Tick(elapsed time.Duration) Mask {
	if elapsed <= 0 {
		return 0
	}

	var expired Mask
	for i := range t.slots {
		s := &t.slots[i]
		if s.Remaining == 0 {
			continue
		}
		if s.Remaining <= elapsed {
			t.clear(i)
			expired |= 1 << uint(i)
			continue
		}
		s.Remaining -= elapsed
	}
	return expired
}

// Slot returns a copy of the slot at index.
func (t *Table) Slot(index int) (Slot, bool) {
	if index < 0 || index >= Count {
		return Slot{}, false
	}
	return t.slots[index], true
}

// Color returns the color at index, or Off when out of range.
func (t *Table) Color(index int) Color {
	s, _ := t.Slot(index)
	return s.Color
}

// Active returns the number of live slots.
func (t *Table) Active() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].Active() {
			n++
		}
	}
	return n
}

// Each calls fn for every slot in index order.
func (t *Table) Each(fn func(index int, s Slot)) {
	for i := range t.slots {
		fn(i, t.slots[i])
	}
}
