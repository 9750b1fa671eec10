package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, -20.0, cfg.Domain.XMin)
	assert.Equal(t, 20.0, cfg.Domain.XMax)
	assert.Equal(t, 0.01, cfg.Domain.Step)
	assert.True(t, cfg.Figure.Legend)
	assert.False(t, cfg.Render.SkipInvalid)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 960, cfg.Figure.Width)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
domain:
  x_min: -5
  x_max: 5
figure:
  title: Trig
  legend: false
render:
  skip_invalid: true
`), 0o644))

	t.Setenv("FPLOT_DOMAIN__STEP", "0.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, -5.0, cfg.Domain.XMin)
	assert.Equal(t, 5.0, cfg.Domain.XMax)
	assert.Equal(t, 0.5, cfg.Domain.Step)
	assert.Equal(t, "Trig", cfg.Figure.Title)
	assert.False(t, cfg.Figure.Legend)
	assert.True(t, cfg.Render.SkipInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero step", "domain:\n  step: 0\n"},
		{"inverted range", "domain:\n  x_min: 3\n  x_max: 1\n"},
		{"bad size", "figure:\n  width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestInitSetsGlobals(t *testing.T) {
	require.NoError(t, Init(""))
	require.NotNil(t, Config)
	assert.Equal(t, "x", Config.Figure.XLabel)
}
