package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 20, cfg.MaxFrameGap)
	assert.Equal(t, 30.0, cfg.ColorTolerance)
}

func TestLoadOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := []byte("video: shapes.mp4\ncircle_distance: 75\nsmooth: true\n")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shapes.mp4", cfg.Video)
	assert.Equal(t, 75.0, cfg.CircleDistance)
	assert.True(t, cfg.Smooth)
	// Untouched keys keep their defaults
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 17.0, cfg.CircleRadiusDiff)
	assert.Equal(t, 1000, cfg.MaxFrames)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("video: [unclosed"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
