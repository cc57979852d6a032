package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePhysics(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.json"), []byte(body), 0o644))
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	writePhysics(t, dir, testPhysicsJSON)

	reloaded := make(chan *PhysicsConfig, 1)
	w, err := NewWatcher(dir, func(cfg *PhysicsConfig) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	writePhysics(t, dir, `{"world": {"gravity": 0.5}}`)

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 0.5, cfg.World.Gravity)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcher_SkipsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	writePhysics(t, dir, testPhysicsJSON)

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(dir, func(*PhysicsConfig) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	writePhysics(t, dir, "{not json")

	select {
	case <-reloaded:
		t.Fatal("parse failure must not reach the callback")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writePhysics(t, dir, testPhysicsJSON)

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(dir, func(*PhysicsConfig) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("unrelated files must not trigger a reload")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), func(*PhysicsConfig) {})
	assert.Error(t, err)
}
