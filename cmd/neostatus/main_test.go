package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/neostatus/device/class/hid"
	"github.com/ardnew/neostatus/device/hal/fifo"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    uint8
		wantErr bool
	}{
		{"0", 0, false},
		{" 9 ", 9, false},
		{"200", 200, false},
		{"256", 0, true},
		{"-1", 0, true},
		{"three", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndex(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatKeyboardReport(t *testing.T) {
	r := hid.KeyboardReport{Modifiers: hid.ModLeftCtrl | hid.ModLeftAlt}
	r.SetKey(hid.KeyDelete)
	assert.Equal(t, "mods=0x05 keys=0x4c,0x00,0x00", formatKeyboardReport(r))
	assert.Equal(t, "released", formatKeyboardReport(hid.KeyboardReport{}))
}

func TestFormatFrame(t *testing.T) {
	got := formatFrame([]status.Color{{}, status.Red})
	assert.Contains(t, got, "0:  off")
	assert.Contains(t, got, "1:\x1b[48;2;255;0;0m")
	assert.Contains(t, got, "#ff0000")
}

func TestMacroComplete(t *testing.T) {
	ctrl := hid.KeyboardReport{Modifiers: hid.ModLeftCtrl}
	released := hid.KeyboardReport{}

	assert.False(t, macroComplete(nil))
	assert.False(t, macroComplete([]hid.KeyboardReport{released}))
	assert.False(t, macroComplete([]hid.KeyboardReport{ctrl}))
	assert.True(t, macroComplete([]hid.KeyboardReport{released, ctrl, released}))
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("NEOSTATUS_LOOP_QUEUE_DEPTH", "4")

	out, err := execute(t, "config", "--cadence", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "10ms")
	assert.Contains(t, out, "queue_depth = 4")
	assert.Equal(t, 10*time.Millisecond, cfg.Loop.Cadence.Std())
}

func TestSendCommand(t *testing.T) {
	busDir := t.TempDir()
	board := fifo.New(busDir)
	require.NoError(t, board.Init(context.Background()))
	defer board.Close()

	reports := make(chan []byte, 1)
	board.USB().SetHandlers(func(data []byte) {
		reports <- append([]byte(nil), data...)
	}, nil)

	out, err := execute(t, "send", "--bus-dir", busDir, "3", "red")
	require.NoError(t, err)
	assert.Contains(t, out, "slot 3 <- #ff0000")

	select {
	case got := <-reports:
		assert.Equal(t, []byte{0x03, 3, 0xFF, 0, 0}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("report not delivered")
	}
}

func TestSendCommandRejectsBadColor(t *testing.T) {
	_, err := execute(t, "send", "--bus-dir", t.TempDir(), "1", "chartreuse-ish")
	assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
}
