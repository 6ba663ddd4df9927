package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReload(t *testing.T) {
	path := writeFile(t, "[log]\nlevel = \"info\"\n")

	received := make(chan Config, 1)
	w := NewWatcher(path, WithDebounce(20*time.Millisecond))
	w.OnReload(func(cfg Config) { received <- cfg })
	require.NoError(t, w.Start())
	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	select {
	case cfg := <-received:
		require.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}
}

func TestWatcherInvalidConfig(t *testing.T) {
	path := writeFile(t, "[log]\nlevel = \"info\"\n")

	errs := make(chan error, 1)
	reloads := make(chan Config, 1)
	w := NewWatcher(path,
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) { errs <- err }),
	)
	w.OnReload(func(cfg Config) { reloads <- cfg })
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644))

	select {
	case err := <-errs:
		require.Error(t, err)
	case cfg := <-reloads:
		t.Fatalf("invalid config delivered: %+v", cfg)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for reload error")
	}
}

func TestWatcherUnsubscribe(t *testing.T) {
	path := writeFile(t, "")

	received := make(chan Config, 1)
	w := NewWatcher(path,
		WithDebounce(10*time.Millisecond),
		WithLoader(func(string) (Config, error) { return Default(), nil }),
	)
	unsub := w.OnReload(func(cfg Config) { received <- cfg })
	unsub()
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("# touched\n"), 0o644))

	select {
	case <-received:
		t.Fatal("handler called after unsubscribe")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopWithoutStart(t *testing.T) {
	require.NoError(t, NewWatcher("unused.toml").Stop())
}
