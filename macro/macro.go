package macro

import (
	"context"
	"time"

	"github.com/ardnew/neostatus/device/class/hid"
	"github.com/ardnew/neostatus/device/hal"
	"github.com/ardnew/neostatus/pkg"
)

// DefaultHold is how long the full combination stays pressed.
const DefaultHold = 10 * time.Millisecond

// releaseTimeout bounds the best-effort all-released report sent after a
// failed sequence.
const releaseTimeout = 100 * time.Millisecond

// Key is one step of a sequence: a modifier bit or a key code.
type Key struct {
	Modifier uint8
	Code     uint8
}

// Modifier returns a modifier key step.
func Modifier(bit uint8) Key { return Key{Modifier: bit} }

// Code returns a regular key step.
func Code(code uint8) Key { return Key{Code: code} }

func (k Key) press(r *hid.KeyboardReport) {
	r.Modifiers |= k.Modifier
	if k.Code != hid.KeyNone {
		r.SetKey(k.Code)
	}
}

func (k Key) release(r *hid.KeyboardReport) {
	r.Modifiers &^= k.Modifier
	if k.Code != hid.KeyNone {
		r.ClearKey(k.Code)
	}
}

// Sequence is an ordered key combination.
type Sequence []Key

// CtrlAltDel is the reboot combination.
var CtrlAltDel = Sequence{
	Modifier(hid.ModLeftCtrl),
	Modifier(hid.ModLeftAlt),
	Code(hid.KeyDelete),
}

// Keyboard sends keyboard reports, blocking while the endpoint is busy.
type Keyboard interface {
	SendKeyboardReport(ctx context.Context, report *hid.KeyboardReport) error
}

// Sender types a sequence.
type Sender struct {
	kbd   Keyboard
	delay hal.Delay
	seq   Sequence

	// Hold is how long the full combination stays pressed.
	Hold time.Duration

	// SendTimeout bounds each report. Zero waits for the host forever.
	SendTimeout time.Duration

	report hid.KeyboardReport
}

// NewSender creates a sender for seq with the default hold time.
func NewSender(kbd Keyboard, delay hal.Delay, seq Sequence) *Sender {
	return &Sender{kbd: kbd, delay: delay, seq: seq, Hold: DefaultHold}
}

// Sequence returns the keys the sender types.
func (s *Sender) Sequence() Sequence { return s.seq }

// Send presses each key in order, holds, and releases in reverse order.
//
// There is no retry. If a report fails the rest of the sequence is
// abandoned and an all-released report is attempted so no key is left
// held on the host; the original error is returned.
func (s *Sender) Send(ctx context.Context) error {
	s.report.Clear()

	for _, k := range s.seq {
		k.press(&s.report)
		if err := s.send(ctx); err != nil {
			return s.abort(ctx, err)
		}
	}

	if s.delay != nil {
		s.delay.Sleep(s.Hold)
	}

	for i := len(s.seq) - 1; i >= 0; i-- {
		s.seq[i].release(&s.report)
		if err := s.send(ctx); err != nil {
			return s.abort(ctx, err)
		}
	}
	return nil
}

func (s *Sender) send(ctx context.Context) error {
	if s.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.SendTimeout)
		defer cancel()
	}
	return s.kbd.SendKeyboardReport(ctx, &s.report)
}

func (s *Sender) abort(ctx context.Context, err error) error {
	pkg.LogDebug(pkg.ComponentMacro, "sequence aborted", "error", err)

	s.report.Clear()
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if rerr := s.kbd.SendKeyboardReport(rctx, &s.report); rerr != nil {
		pkg.LogDebug(pkg.ComponentMacro, "release failed", "error", rerr)
	}
	return err
}
