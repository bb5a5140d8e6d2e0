package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.sr.ht/~whereswaldon/folio/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStyle(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadStyleDefaults(t *testing.T) {
	style, err := LoadStyle("")
	require.NoError(t, err)
	assert.Equal(t, chart.DefaultStyle(), style)
}

func TestLoadStyleOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeStyle(t, path, "grid_rows: 4\nrising_color: \"#00ff00\"\narea_alpha: 128\nline_width: 3.5\n")

	style, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, 4, style.GridRows)
	assert.Equal(t, chart.RGB(0, 0xff, 0), style.Rising)
	assert.Equal(t, uint8(128), style.AreaAlpha)
	assert.Equal(t, 3.5, style.LineWidth)
	// Unset fields keep their defaults.
	assert.Equal(t, chart.DefaultStyle().GridColumns, style.GridColumns)
	assert.Equal(t, chart.DefaultStyle().Falling, style.Falling)
}

func TestLoadStyleErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadStyle(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	writeStyle(t, bad, "rising_color: \"#xyz\"\n")
	_, err = LoadStyle(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeStyle(t, invalid, "grid_rows: -2\n")
	_, err = LoadStyle(invalid)
	assert.ErrorContains(t, err, "grid_rows")
}

func TestStylePath(t *testing.T) {
	t.Setenv(StyleEnv, "")
	assert.Equal(t, "flag.yaml", StylePath("flag.yaml"))
	t.Setenv(StyleEnv, "env.yaml")
	assert.Equal(t, "env.yaml", StylePath("flag.yaml"))
}

func TestStyleSourceReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeStyle(t, path, "grid_rows: 3\n")
	src, err := NewStyleSource(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	styles := src.Stream(ctx)
	assert.Equal(t, 3, receive(t, styles).GridRows)

	writeStyle(t, path, "grid_rows: -1\n")
	assert.Error(t, src.Reload())
	assert.Equal(t, 3, src.Current().GridRows)

	writeStyle(t, path, "grid_rows: 6\n")
	require.NoError(t, src.Reload())
	assert.Equal(t, 6, receive(t, styles).GridRows)
}

func TestStyleSourceWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeStyle(t, path, "grid_columns: 2\n")
	src, err := NewStyleSource(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Watch(ctx) }()

	// The watcher may not be registered yet, so keep rewriting until the
	// change is observed.
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("grid_columns: 9\n"), 0o644); err != nil {
			return false
		}
		return src.Current().GridColumns == 9
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}
