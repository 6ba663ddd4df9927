// Package config loads the simulator configuration.
//
// Values are resolved with the precedence CLI flags > NEOSTATUS_*
// environment variables > TOML file > defaults. Only flags the user
// actually set override lower layers.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/ardnew/neostatus/loop"
	"github.com/ardnew/neostatus/pkg"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "NEOSTATUS_"

// Config is the simulator configuration.
type Config struct {
	Loop     Loop     `toml:"loop"`
	Log      Log      `toml:"log"`
	Bus      Bus      `toml:"bus"`
	Metrics  Metrics  `toml:"metrics"`
	Watchdog Watchdog `toml:"watchdog"`
}

// Loop holds the control loop parameters.
type Loop struct {
	Cadence     Duration `toml:"cadence"`
	Timeout     Duration `toml:"timeout"`
	BootColor   Color    `toml:"boot_color"`
	QueueDepth  int      `toml:"queue_depth"`
	Debounce    int      `toml:"debounce"`
	Hold        Duration `toml:"hold"`
	SendTimeout Duration `toml:"send_timeout"`
}

// Log holds logging options.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or journal
}

// Bus locates the simulated device bus.
type Bus struct {
	Dir string `toml:"dir"`
}

// Metrics configures the Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `toml:"addr"`
}

// Watchdog configures loop supervision.
type Watchdog struct {
	Timeout Duration `toml:"timeout"` // Software watchdog window, 0 disables
	Systemd bool     `toml:"systemd"` // Forward kicks to sd_notify
}

// Default returns the built-in configuration.
func Default() Config {
	d := loop.DefaultConfig()
	return Config{
		Loop: Loop{
			Cadence:     Duration(d.Cadence),
			Timeout:     Duration(d.Timeout),
			BootColor:   Color(d.BootColor),
			QueueDepth:  d.QueueDepth,
			Debounce:    d.Debounce,
			Hold:        Duration(d.Hold),
			SendTimeout: Duration(d.SendTimeout),
		},
		Log:      Log{Level: "info", Format: "text"},
		Bus:      Bus{Dir: DefaultBusDir()},
		Watchdog: Watchdog{Timeout: Duration(50 * d.Cadence), Systemd: true},
	}
}

// DefaultBusDir returns the default simulated bus directory.
func DefaultBusDir() string {
	return os.TempDir() + string(os.PathSeparator) + "neostatus-bus"
}

// LoopConfig converts the loop section.
func (c Config) LoopConfig() loop.Config {
	return loop.Config{
		Cadence:     c.Loop.Cadence.Std(),
		Timeout:     c.Loop.Timeout.Std(),
		BootColor:   c.Loop.BootColor.Status(),
		QueueDepth:  c.Loop.QueueDepth,
		Debounce:    c.Loop.Debounce,
		Hold:        c.Loop.Hold.Std(),
		SendTimeout: c.Loop.SendTimeout.Std(),
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.LoopConfig().Validate(); err != nil {
		return err
	}
	if _, err := pkg.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "journal":
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, pkg.ErrInvalidParameter)
	}
	if c.Bus.Dir == "" {
		return fmt.Errorf("bus dir: %w", pkg.ErrInvalidParameter)
	}
	if c.Watchdog.Timeout < 0 {
		return fmt.Errorf("watchdog timeout: %w", pkg.ErrInvalidParameter)
	}
	return nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads the TOML file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		pkg.LogDebug(pkg.ComponentConfig, "config file not found, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Marshal encodes cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// setting binds one configuration key to its flag and environment names.
type setting struct {
	key   string // TOML path
	flag  string
	usage string
	set   func(c *Config, v string) error
	get   func(c *Config) string
}

// envName returns the environment variable for s.
func (s setting) envName() string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(s.key, ".", "_"))
}

func durationSetting(key, flag, usage string, field func(*Config) *Duration) setting {
	return setting{
		key: key, flag: flag, usage: usage,
		set: func(c *Config, v string) error { return field(c).UnmarshalText([]byte(v)) },
		get: func(c *Config) string { return field(c).Std().String() },
	}
}

func intSetting(key, flag, usage string, field func(*Config) *int) setting {
	return setting{
		key: key, flag: flag, usage: usage,
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s %q: %w", key, v, pkg.ErrInvalidParameter)
			}
			*field(c) = n
			return nil
		},
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
	}
}

func stringSetting(key, flag, usage string, field func(*Config) *string) setting {
	return setting{
		key: key, flag: flag, usage: usage,
		set: func(c *Config, v string) error { *field(c) = v; return nil },
		get: func(c *Config) string { return *field(c) },
	}
}

func boolSetting(key, flag, usage string, field func(*Config) *bool) setting {
	return setting{
		key: key, flag: flag, usage: usage,
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s %q: %w", key, v, pkg.ErrInvalidParameter)
			}
			*field(c) = b
			return nil
		},
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
	}
}

var settings = []setting{
	durationSetting("loop.cadence", "cadence", "loop period",
		func(c *Config) *Duration { return &c.Loop.Cadence }),
	durationSetting("loop.timeout", "timeout", "status slot lifetime",
		func(c *Config) *Duration { return &c.Loop.Timeout }),
	{
		key: "loop.boot_color", flag: "boot-color", usage: "slot 0 color after INIT",
		set: func(c *Config, v string) error { return c.Loop.BootColor.UnmarshalText([]byte(v)) },
		get: func(c *Config) string { return FormatColor(c.Loop.BootColor.Status()) },
	},
	intSetting("loop.queue_depth", "queue-depth", "command queue capacity",
		func(c *Config) *int { return &c.Loop.QueueDepth }),
	intSetting("loop.debounce", "debounce", "stable button samples required, 0 disables",
		func(c *Config) *int { return &c.Loop.Debounce }),
	durationSetting("loop.hold", "hold", "macro hold time",
		func(c *Config) *Duration { return &c.Loop.Hold }),
	durationSetting("loop.send_timeout", "send-timeout", "per-report macro timeout, 0 waits forever",
		func(c *Config) *Duration { return &c.Loop.SendTimeout }),
	stringSetting("log.level", "log-level", "log level (debug, info, warn, error)",
		func(c *Config) *string { return &c.Log.Level }),
	stringSetting("log.format", "log-format", "log format (text, json, journal)",
		func(c *Config) *string { return &c.Log.Format }),
	stringSetting("bus.dir", "bus-dir", "simulated device bus directory",
		func(c *Config) *string { return &c.Bus.Dir }),
	stringSetting("metrics.addr", "metrics-addr", "Prometheus listen address, empty disables",
		func(c *Config) *string { return &c.Metrics.Addr }),
	durationSetting("watchdog.timeout", "watchdog", "software watchdog window, 0 disables",
		func(c *Config) *Duration { return &c.Watchdog.Timeout }),
	boolSetting("watchdog.systemd", "systemd", "forward watchdog kicks to systemd",
		func(c *Config) *bool { return &c.Watchdog.Systemd }),
}

// ApplyEnv overrides cfg from NEOSTATUS_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, s := range settings {
		v, ok := lookup(s.envName())
		if !ok || v == "" {
			continue
		}
		if err := s.set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", s.envName(), err)
		}
	}
	return nil
}

// RegisterFlags defines one flag per setting on fs, with defaults from
// Default.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	for _, s := range settings {
		fs.String(s.flag, s.get(&def), s.usage)
	}
}

// ApplyFlags overrides cfg from the flags the user changed on fs.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	for _, s := range settings {
		f := fs.Lookup(s.flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := s.set(cfg, f.Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", s.flag, err)
		}
	}
	return nil
}

// Resolve loads path and applies environment and flag overrides, then
// validates the result.
func Resolve(path string, fs *pflag.FlagSet) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if fs != nil {
		if err := ApplyFlags(&cfg, fs); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
