package strip

import (
	"fmt"
	"io"
	"sync"

	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

// WS2812 SPI encoding parameters.
const (
	// SymbolBits is the number of SPI bits that encode one data bit.
	SymbolBits = 3

	// BytesPerLED is the encoded size of one GRB color.
	BytesPerLED = 3 * SymbolBits

	// ResetBytes is the length of the low reset gap that latches a frame,
	// at least 280µs at a 2.4 MHz SPI clock.
	ResetBytes = 84

	symbolOne  = 0b110
	symbolZero = 0b100
)

// FrameSize returns the encoded size of a frame of n LEDs, including the
// reset gap.
func FrameSize(n int) int {
	return n*BytesPerLED + ResetBytes
}

// EncodeByte expands one data byte into its 3-byte SPI form.
func EncodeByte(b byte) [SymbolBits]byte {
	var v uint32
	for i := 7; i >= 0; i-- {
		v <<= SymbolBits
		if b&(1<<i) != 0 {
			v |= symbolOne
		} else {
			v |= symbolZero
		}
	}
	return [SymbolBits]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// decodeByte inverts EncodeByte.
func decodeByte(sym []byte) (byte, bool) {
	v := uint32(sym[0])<<16 | uint32(sym[1])<<8 | uint32(sym[2])
	var b byte
	for i := 7; i >= 0; i-- {
		switch (v >> (i * SymbolBits)) & 0b111 {
		case symbolOne:
			b |= 1 << i
		case symbolZero:
		default:
			return 0, false
		}
	}
	return b, true
}

// Encoder is a hal.Strip that produces the WS2812 wire encoding.
//
// WriteColor appends to an internal frame buffer; Latch appends the reset
// gap and writes the whole frame to the sink in one call. A write error is
// kept and reported by Err, since Latch cannot return one.
type Encoder struct {
	w   io.Writer
	buf []byte
	err error
	mu  sync.Mutex
}

// NewEncoder creates an encoder writing frames to w, sized for n LEDs.
func NewEncoder(w io.Writer, n int) *Encoder {
	return &Encoder{w: w, buf: make([]byte, 0, FrameSize(n))}
}

// WriteColor appends one LED in G, R, B order.
func (e *Encoder) WriteColor(r, g, b uint8) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range [3]uint8{g, r, b} {
		sym := EncodeByte(c)
		e.buf = append(e.buf, sym[:]...)
	}
}

// Latch emits the reset gap and flushes the frame.
func (e *Encoder) Latch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for range ResetBytes {
		e.buf = append(e.buf, 0)
	}
	if _, err := e.w.Write(e.buf); err != nil {
		e.err = err
		pkg.LogDebug(pkg.ComponentStrip, "frame write failed", "error", err)
	}
	e.buf = e.buf[:0]
}

// Err returns the last sink write error, if any.
func (e *Encoder) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// DecodeFrame decodes a WS2812 wire frame into colors. The trailing reset
// gap is optional.
func DecodeFrame(wire []byte) ([]status.Color, error) {
	n := len(wire)
	for n > 0 && wire[n-1] == 0 {
		n--
	}
	if n%BytesPerLED != 0 {
		return nil, fmt.Errorf("frame length %d: %w", n, pkg.ErrProtocol)
	}

	colors := make([]status.Color, 0, n/BytesPerLED)
	for off := 0; off < n; off += BytesPerLED {
		var grb [3]byte
		for j := range grb {
			p := off + j*SymbolBits
			b, ok := decodeByte(wire[p : p+SymbolBits])
			if !ok {
				return nil, fmt.Errorf("invalid symbol at byte %d: %w", p, pkg.ErrProtocol)
			}
			grb[j] = b
		}
		colors = append(colors, status.Color{R: grb[1], G: grb[0], B: grb[2]})
	}
	return colors, nil
}
