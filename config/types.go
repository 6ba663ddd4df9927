package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

// Duration is a time.Duration written as a Go duration string ("20ms").
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, pkg.ErrInvalidParameter)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Color is a status color written as a preset name or a hex triple.
type Color status.Color

var presets = map[string]status.Color{
	"off":    status.Off,
	"red":    status.Red,
	"green":  status.Green,
	"blue":   status.Blue,
	"orange": status.Orange,
}

// ParseColor parses "red", "#ff5500", "ff5500" or "#f50".
func ParseColor(s string) (status.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := presets[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return status.Color{}, fmt.Errorf("color %q: %w", s, pkg.ErrInvalidParameter)
	}
	r, g, b := c.RGB255()
	return status.Color{R: r, G: g, B: b}, nil
}

// FormatColor returns the "#rrggbb" form of c.
func FormatColor(c status.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// UnmarshalText parses a color.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = Color(v)
	return nil
}

// MarshalText formats the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(FormatColor(status.Color(c))), nil
}

// Status returns the color as a status.Color.
func (c Color) Status() status.Color { return status.Color(c) }
