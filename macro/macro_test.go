package macro

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ardnew/neostatus/device/class/hid"
	"github.com/ardnew/neostatus/device/hal/halmock"
	"github.com/ardnew/neostatus/pkg"
)

type recordingKeyboard struct {
	reports  []hid.KeyboardReport
	failAt   int // 1-based report number to fail, 0 never
	err      error
	deadline []bool
}

func (k *recordingKeyboard) SendKeyboardReport(ctx context.Context, r *hid.KeyboardReport) error {
	k.reports = append(k.reports, *r)
	_, ok := ctx.Deadline()
	k.deadline = append(k.deadline, ok)
	if k.failAt == len(k.reports) {
		return k.err
	}
	return nil
}

func report(mods uint8, keys ...uint8) hid.KeyboardReport {
	var r hid.KeyboardReport
	r.Modifiers = mods
	copy(r.Keys[:], keys)
	return r
}

func TestCtrlAltDel(t *testing.T) {
	ctrl := gomock.NewController(t)
	delay := halmock.NewMockDelay(ctrl)
	kbd := &recordingKeyboard{}

	delay.EXPECT().Sleep(DefaultHold).Times(1)

	s := NewSender(kbd, delay, CtrlAltDel)
	require.NoError(t, s.Send(context.Background()))

	const ctrlAlt = hid.ModLeftCtrl | hid.ModLeftAlt
	want := []hid.KeyboardReport{
		report(hid.ModLeftCtrl),
		report(ctrlAlt),
		report(ctrlAlt, hid.KeyDelete),
		report(ctrlAlt),
		report(hid.ModLeftCtrl),
		report(0),
	}
	assert.Equal(t, want, kbd.reports)
	assert.True(t, kbd.reports[len(kbd.reports)-1].IsEmpty())
	assert.Equal(t, []bool{false, false, false, false, false, false}, kbd.deadline)
}

func TestSendRepeatable(t *testing.T) {
	kbd := &recordingKeyboard{}
	s := NewSender(kbd, nil, CtrlAltDel)

	require.NoError(t, s.Send(context.Background()))
	require.NoError(t, s.Send(context.Background()))
	assert.Len(t, kbd.reports, 12)
	assert.Equal(t, kbd.reports[:6], kbd.reports[6:])
}

func TestSendTimeoutBoundsReports(t *testing.T) {
	kbd := &recordingKeyboard{}
	s := NewSender(kbd, nil, CtrlAltDel)
	s.SendTimeout = time.Second

	require.NoError(t, s.Send(context.Background()))
	for i, ok := range kbd.deadline {
		assert.True(t, ok, "report %d", i)
	}
}

func TestSendFailureReleasesKeys(t *testing.T) {
	tests := []struct {
		name   string
		failAt int
		sent   int
	}{
		{name: "during press", failAt: 2, sent: 3},
		{name: "during release", failAt: 5, sent: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kbd := &recordingKeyboard{failAt: tt.failAt, err: pkg.ErrTimeout}
			s := NewSender(kbd, nil, CtrlAltDel)

			err := s.Send(context.Background())
			assert.True(t, errors.Is(err, pkg.ErrTimeout))
			require.Len(t, kbd.reports, tt.sent)
			assert.True(t, kbd.reports[tt.sent-1].IsEmpty(), "last report must release all keys")
		})
	}
}

func TestSendCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kbd := &recordingKeyboard{failAt: 1, err: pkg.ErrCancelled}
	s := NewSender(kbd, nil, CtrlAltDel)

	assert.ErrorIs(t, s.Send(ctx), pkg.ErrCancelled)
	require.Len(t, kbd.reports, 2)
	assert.True(t, kbd.deadline[1], "release attempt is bounded")
}

func TestSequence(t *testing.T) {
	s := NewSender(&recordingKeyboard{}, nil, CtrlAltDel)
	assert.Equal(t, CtrlAltDel, s.Sequence())
	assert.Equal(t, DefaultHold, s.Hold)
}
