package journal

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	msg    string
	pri    journal.Priority
	fields map[string]string
}

func capture(level slog.Level) (*Handler, *[]entry) {
	var got []entry
	h := NewHandler(level)
	h.send = func(msg string, pri journal.Priority, fields map[string]string) error {
		got = append(got, entry{msg, pri, fields})
		return nil
	}
	return h, &got
}

func TestHandlerFields(t *testing.T) {
	h, got := capture(slog.LevelDebug)
	logger := slog.New(h).With("component", "loop").WithGroup("slot")

	logger.Warn("expired", "index", 3, "after", 5*time.Second)

	require.Len(t, *got, 1)
	e := (*got)[0]
	assert.Equal(t, "expired", e.msg)
	assert.Equal(t, journal.PriWarning, e.pri)
	assert.Equal(t, "4", e.fields["PRIORITY"])
	assert.Equal(t, Identifier, e.fields["SYSLOG_IDENTIFIER"])
	assert.Equal(t, "loop", e.fields["COMPONENT"])
	assert.Equal(t, "3", e.fields["SLOT_INDEX"])
	assert.Equal(t, "5s", e.fields["SLOT_AFTER"])
}

func TestHandlerLevel(t *testing.T) {
	h, got := capture(slog.LevelInfo)
	logger := slog.New(h)

	logger.Debug("hidden")
	logger.Error("shown", slog.Group("usb", "ep", 1))

	require.Len(t, *got, 1)
	assert.Equal(t, journal.PriErr, (*got)[0].pri)
	assert.Equal(t, "1", (*got)[0].fields["USB_EP"])
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestPriority(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  journal.Priority
	}{
		{slog.LevelDebug, journal.PriDebug},
		{slog.LevelInfo, journal.PriInfo},
		{slog.LevelWarn, journal.PriWarning},
		{slog.LevelError, journal.PriErr},
		{slog.LevelError + 4, journal.PriErr},
	}
	for _, tt := range tests {
		if got := priority(tt.level); got != tt.want {
			t.Errorf("priority(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
