// Package journal provides a slog.Handler that writes to the systemd
// journal.
package journal

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// Identifier is the SYSLOG_IDENTIFIER attached to every entry.
const Identifier = "neostatus"

// Handler is a slog.Handler that sends records to the systemd journal.
type Handler struct {
	level  slog.Leveler
	attrs  []groupedAttr
	groups []string
	send   func(msg string, pri journal.Priority, fields map[string]string) error
}

// groupedAttr is an attribute bound to the groups open when it was added.
type groupedAttr struct {
	attr   slog.Attr
	groups []string
}

// NewHandler creates a journal handler filtering at level.
func NewHandler(level slog.Leveler) *Handler {
	return &Handler{level: level, send: journal.Send}
}

// Available reports whether the systemd journal socket is reachable.
func Available() bool {
	return journal.Enabled()
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle sends the record to the journal.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	priority := priority(r.Level)

	fields := map[string]string{
		"PRIORITY":          strconv.Itoa(int(priority)),
		"SYSLOG_IDENTIFIER": Identifier,
	}
	for _, ga := range h.attrs {
		addAttr(fields, ga.attr, ga.groups)
	}
	r.Attrs(func(attr slog.Attr) bool {
		addAttr(fields, attr, h.groups)
		return true
	})

	return h.send(r.Message, priority, fields)
}

// WithAttrs returns a new handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := *h
	n.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		n.attrs = append(n.attrs, groupedAttr{attr: a, groups: h.groups})
	}
	return &n
}

// WithGroup returns a new handler with a group prefix.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	n := *h
	n.groups = append(slices.Clone(h.groups), name)
	return &n
}

func priority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// addAttr flattens attr into upper-case journal fields.
func addAttr(fields map[string]string, attr slog.Attr, groups []string) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, "_") + "_" + key
	}
	key = strings.ToUpper(key)

	switch attr.Value.Kind() {
	case slog.KindGroup:
		sub := append(slices.Clone(groups), attr.Key)
		for _, a := range attr.Value.Group() {
			addAttr(fields, a, sub)
		}
	case slog.KindTime:
		fields[key] = attr.Value.Time().Format("2006-01-02T15:04:05.000Z07:00")
	default:
		fields[key] = attr.Value.String()
	}
}
