package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/neostatus/loop"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "neostatus.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultMatchesLoop(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, loop.DefaultConfig(), cfg.LoopConfig())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, `
[loop]
cadence = "10ms"
timeout = "2s"
boot_color = "#00ff00"
debounce = 3

[log]
level = "debug"
format = "json"

[metrics]
addr = ":9100"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Loop.Cadence.Std())
	assert.Equal(t, 2*time.Second, cfg.Loop.Timeout.Std())
	assert.Equal(t, status.Green, cfg.Loop.BootColor.Status())
	assert.Equal(t, 3, cfg.Loop.Debounce)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)

	// Unset keys keep their defaults.
	assert.Equal(t, Default().Loop.QueueDepth, cfg.Loop.QueueDepth)
	assert.Equal(t, Default().Bus.Dir, cfg.Bus.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: "[loop\n"},
		{name: "unknown key", content: "[loop]\nspeed = 1\n"},
		{name: "bad duration", content: "[loop]\ncadence = \"fast\"\n"},
		{name: "bad color", content: "[loop]\nboot_color = \"chartreuse-ish\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Loop.BootColor = Color(status.Color{R: 0x12, G: 0x34, B: 0x56})

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#123456")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    status.Color
		wantErr bool
	}{
		{in: "orange", want: status.Orange},
		{in: " Red ", want: status.Red},
		{in: "#ff5500", want: status.Color{R: 0xFF, G: 0x55}},
		{in: "0000ff", want: status.Blue},
		{in: "#0f0", want: status.Green},
		{in: "#12", wantErr: true},
		{in: "purple-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff5500", FormatColor(status.Orange))
	assert.Equal(t, "#000000", FormatColor(status.Off))
}

func TestPrecedence(t *testing.T) {
	path := writeFile(t, `
[loop]
cadence = "30ms"
timeout = "3s"
hold = "15ms"
`)

	t.Setenv("NEOSTATUS_LOOP_TIMEOUT", "4s")
	t.Setenv("NEOSTATUS_LOOP_HOLD", "25ms")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--hold", "40ms"}))

	cfg, err := Resolve(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Millisecond, cfg.Loop.Cadence.Std(), "file over default")
	assert.Equal(t, 4*time.Second, cfg.Loop.Timeout.Std(), "env over file")
	assert.Equal(t, 40*time.Millisecond, cfg.Loop.Hold.Std(), "flag over env")
	assert.Equal(t, Default().Loop.SendTimeout, cfg.Loop.SendTimeout, "untouched default")
}

func TestApplyEnvErrors(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, func(k string) (string, bool) {
		if k == "NEOSTATUS_LOOP_QUEUE_DEPTH" {
			return "many", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
}

func TestFlagDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Equal(t, "20ms", fs.Lookup("cadence").DefValue)
	assert.Equal(t, "#ff5500", fs.Lookup("boot-color").DefValue)
	assert.Equal(t, "true", fs.Lookup("systemd").DefValue)

	cfg := Default()
	require.NoError(t, ApplyFlags(&cfg, fs))
	assert.Equal(t, Default(), cfg, "unchanged flags do not override")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "cadence", modify: func(c *Config) { c.Loop.Cadence = 0 }},
		{name: "timeout", modify: func(c *Config) { c.Loop.Timeout = -1 }},
		{name: "level", modify: func(c *Config) { c.Log.Level = "loud" }},
		{name: "format", modify: func(c *Config) { c.Log.Format = "xml" }},
		{name: "bus", modify: func(c *Config) { c.Bus.Dir = "" }},
		{name: "watchdog", modify: func(c *Config) { c.Watchdog.Timeout = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), pkg.ErrInvalidParameter)
		})
	}
}

func TestApplyLogging(t *testing.T) {
	prev := pkg.GetLogLevel()
	defer pkg.SetLogLevel(prev)

	cfg := Default()
	cfg.Log.Level = "debug"
	ApplyLogging(cfg)
	assert.Equal(t, slog.LevelDebug, pkg.GetLogLevel())

	cfg.Log.Level = "bogus"
	ApplyLogging(cfg)
	assert.Equal(t, slog.LevelDebug, pkg.GetLogLevel())
}
