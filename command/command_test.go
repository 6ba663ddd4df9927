package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/neostatus/status"
)

func TestDecodeReport(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		wantOK bool
		want   Command
	}{
		{"set red", []byte{0x03, 3, 255, 0, 0}, true, SetLED(3, status.Red)},
		{"trailing bytes", []byte{0x03, 1, 1, 2, 3, 0xAA, 0xBB}, true, SetLED(1, status.Color{R: 1, G: 2, B: 3})},
		{"index passes through", []byte{0x03, 200, 9, 9, 9}, true, SetLED(200, status.Color{R: 9, G: 9, B: 9})},
		{"too short", []byte{0x03, 9}, false, Command{}},
		{"four bytes", []byte{0x03, 1, 2, 3}, false, Command{}},
		{"wrong tag", []byte{0x02, 1, 2, 3, 4}, false, Command{}},
		{"empty", nil, false, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeReport(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeReport(t *testing.T) {
	var buf [SetLEDReportSize]byte
	n := EncodeReport(buf[:], 7, status.Color{R: 1, G: 2, B: 3})
	require.Equal(t, SetLEDReportSize, n)
	assert.Equal(t, []byte{0x03, 7, 1, 2, 3}, buf[:])

	cmd, ok := DecodeReport(buf[:n])
	require.True(t, ok)
	assert.Equal(t, SetLED(7, status.Color{R: 1, G: 2, B: 3}), cmd)

	assert.Zero(t, EncodeReport(make([]byte, 4), 0, status.Red))
}

func TestApply(t *testing.T) {
	tbl := status.New(status.DefaultTimeout)

	Apply(tbl, SetLED(3, status.Red))
	Apply(tbl, SetLED(status.Count, status.Blue))
	Apply(tbl, Macro())

	assert.Equal(t, status.Red, tbl.Color(3))
	assert.Equal(t, 1, tbl.Active())
}

func TestMalformedReportChangesNothing(t *testing.T) {
	tbl := status.New(status.DefaultTimeout)
	q := NewQueue(0)

	assert.Equal(t, Ignored, HandleReport(q, []byte{0x03, 9}))
	q.Drain(func(c Command) { Apply(tbl, c) })

	assert.Zero(t, tbl.Active())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "set-led", KindSetLED.String())
	assert.Equal(t, "macro", KindMacro.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
