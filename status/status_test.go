package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, New(0).Timeout())
	assert.Equal(t, DefaultTimeout, New(-time.Second).Timeout())
	assert.Equal(t, time.Second, New(time.Second).Timeout())
}

func TestTable_SetInRange(t *testing.T) {
	for i := 0; i < Count; i++ {
		tbl := New(DefaultTimeout)
		c := Color{R: uint8(i), G: 0x80, B: 0xFF - uint8(i)}
		tbl.Set(i, c)

		s, ok := tbl.Slot(i)
		require.True(t, ok)
		assert.Equal(t, c, s.Color)
		assert.Equal(t, DefaultTimeout, s.Remaining)
		assert.Equal(t, 1, tbl.Active())
	}
}

func TestTable_SetOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, Count, Count + 1, 255, 1 << 20} {
		tbl := New(DefaultTimeout)
		tbl.Set(0, Red)
		before := *tbl

		tbl.Set(idx, Blue)
		tbl.Clear(idx)

		assert.Equal(t, before, *tbl, "index %d", idx)
		_, ok := tbl.Slot(idx)
		assert.False(t, ok)
		assert.Equal(t, Off, tbl.Color(idx))
	}
}

func TestTable_SetRestartsLifetime(t *testing.T) {
	tbl := New(time.Second)
	tbl.Set(4, Green)
	tbl.Tick(600 * time.Millisecond)
	tbl.Set(4, Blue)

	s, _ := tbl.Slot(4)
	assert.Equal(t, Blue, s.Color)
	assert.Equal(t, time.Second, s.Remaining)
}

func TestTable_Clear(t *testing.T) {
	tbl := New(DefaultTimeout)
	tbl.Set(2, Red)
	tbl.Clear(2)

	s, _ := tbl.Slot(2)
	assert.Equal(t, Slot{}, s)
	assert.False(t, s.Active())
}

func TestTable_Tick(t *testing.T) {
	tests := []struct {
		name          string
		elapsed       time.Duration
		wantRemaining time.Duration
		wantColor     Color
		wantExpired   bool
	}{
		{"partial", 20 * time.Millisecond, 980 * time.Millisecond, Red, false},
		{"almost", 999 * time.Millisecond, time.Millisecond, Red, false},
		{"exact", time.Second, 0, Off, true},
		{"beyond", time.Hour, 0, Off, true},
		{"zero", 0, time.Second, Red, false},
		{"negative", -time.Second, time.Second, Red, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(time.Second)
			tbl.Set(7, Red)

			expired := tbl.Tick(tt.elapsed)

			s, _ := tbl.Slot(7)
			assert.Equal(t, tt.wantRemaining, s.Remaining)
			assert.Equal(t, tt.wantColor, s.Color)
			assert.Equal(t, tt.wantExpired, expired.Has(7))
		})
	}
}

func TestTable_TickZeroIsIdempotent(t *testing.T) {
	tbl := New(DefaultTimeout)
	tbl.Set(0, Orange)
	tbl.Set(5, Blue)
	tbl.Tick(1234 * time.Millisecond)
	want := *tbl

	for i := 0; i < 100; i++ {
		assert.Zero(t, tbl.Tick(0))
	}
	assert.Equal(t, want, *tbl)
}

func TestTable_TickClearsEverythingInOnePass(t *testing.T) {
	tbl := New(DefaultTimeout)
	for i := 0; i < Count; i++ {
		tbl.Set(i, Color{R: 1})
		tbl.Tick(10 * time.Millisecond)
	}

	expired := tbl.Tick(DefaultTimeout)

	assert.Equal(t, Count, expired.Len())
	assert.Zero(t, tbl.Active())
	tbl.Each(func(i int, s Slot) {
		assert.Equal(t, Slot{}, s, "slot %d", i)
	})
}

func TestTable_TickLeavesIdleSlotsAlone(t *testing.T) {
	tbl := New(DefaultTimeout)
	tbl.Set(1, Green)

	expired := tbl.Tick(DefaultTimeout + time.Second)

	assert.True(t, expired.Has(1))
	assert.Equal(t, 1, expired.Len())
}

func TestTable_Reset(t *testing.T) {
	tbl := New(DefaultTimeout)
	tbl.Set(0, Red)
	tbl.Set(9, Blue)
	tbl.Reset()
	assert.Zero(t, tbl.Active())
	assert.Equal(t, DefaultTimeout, tbl.Timeout())
}

func TestMask(t *testing.T) {
	var m Mask = 1<<0 | 1<<3 | 1<<9
	assert.True(t, m.Has(0))
	assert.True(t, m.Has(3))
	assert.True(t, m.Has(9))
	assert.False(t, m.Has(1))
	assert.False(t, m.Has(-1))
	assert.False(t, m.Has(Count))
	assert.Equal(t, 3, m.Len())
}
