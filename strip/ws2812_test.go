package strip

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

func TestEncodeByte(t *testing.T) {
	tests := []struct {
		in   byte
		want [SymbolBits]byte
	}{
		// 100 100 100 100 100 100 100 100
		{0x00, [SymbolBits]byte{0x92, 0x49, 0x24}},
		// 110 110 110 110 110 110 110 110
		{0xFF, [SymbolBits]byte{0xDB, 0x6D, 0xB6}},
		// 110 100 100 100 100 100 100 100
		{0x80, [SymbolBits]byte{0xD2, 0x49, 0x24}},
		// 100 100 100 100 100 100 100 110
		{0x01, [SymbolBits]byte{0x92, 0x49, 0x26}},
	}

	for _, tt := range tests {
		if got := EncodeByte(tt.in); got != tt.want {
			t.Errorf("EncodeByte(%#02x) = % x, want % x", tt.in, got, tt.want)
		}
	}
}

func TestEncoderFrame(t *testing.T) {
	var sink bytes.Buffer
	enc := NewEncoder(&sink, 2)

	enc.WriteColor(0xFF, 0x00, 0x80) // R G B
	enc.WriteColor(0x00, 0x01, 0x00)
	enc.Latch()

	require.NoError(t, enc.Err())
	wire := sink.Bytes()
	require.Len(t, wire, FrameSize(2))

	g := EncodeByte(0x00)
	r := EncodeByte(0xFF)
	assert.Equal(t, g[:], wire[0:3], "green first")
	assert.Equal(t, r[:], wire[3:6], "red second")
	assert.Equal(t, make([]byte, ResetBytes), wire[2*BytesPerLED:])

	colors, err := DecodeFrame(wire)
	require.NoError(t, err)
	assert.Equal(t, []status.Color{{R: 0xFF, B: 0x80}, {G: 0x01}}, colors)
}

func TestEncoderFramesAreIndependent(t *testing.T) {
	var sink bytes.Buffer
	enc := NewEncoder(&sink, 1)

	enc.WriteColor(1, 2, 3)
	enc.Latch()
	enc.WriteColor(4, 5, 6)
	enc.Latch()

	assert.Equal(t, 2*FrameSize(1), sink.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEncoderWriteError(t *testing.T) {
	enc := NewEncoder(failingWriter{}, 1)
	enc.WriteColor(1, 2, 3)
	enc.Latch()
	assert.EqualError(t, enc.Err(), "broken pipe")
}

func TestDecodeFrameErrors(t *testing.T) {
	tests := []struct {
		name string
		wire []byte
	}{
		{name: "short", wire: []byte{0x92, 0x49}},
		{name: "bad symbol", wire: []byte{0xFF, 0xFF, 0xFF, 0x92, 0x49, 0x24, 0x92, 0x49, 0x24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFrame(tt.wire)
			assert.ErrorIs(t, err, pkg.ErrProtocol)
		})
	}
}

func TestDecodeFrameEmpty(t *testing.T) {
	colors, err := DecodeFrame(make([]byte, ResetBytes))
	require.NoError(t, err)
	assert.Empty(t, colors)
}

func TestRenderThroughEncoder(t *testing.T) {
	tbl := status.New(0)
	tbl.Set(0, status.Orange)
	tbl.Set(9, status.Blue)

	var sink bytes.Buffer
	NewRenderer(NewEncoder(&sink, status.Count), nil).Render(tbl)

	colors, err := DecodeFrame(sink.Bytes())
	require.NoError(t, err)
	require.Len(t, colors, status.Count)
	assert.Equal(t, status.Orange, colors[0])
	assert.Equal(t, status.Blue, colors[9])
	assert.True(t, colors[5].IsOff())
}
