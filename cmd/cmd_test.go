package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltydk/fplot/session"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	sess := filepath.Join(dir, "s.json")
	require.NoError(t, session.SaveFile(sess, []string{"x", "  ", "5"}))

	out := filepath.Join(dir, "plot.svg")
	_, err := execute(t, "render", sess, "-e", "sin(x)", "-o", out, "--x-min", "-3", "--x-max", "3", "--step", "0.1")
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderCommandEvaluationError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plot.png")

	_, err := execute(t, "render", "-e", "nope(x)", "-o", out)
	assert.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderCommandMalformedSession(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o644))

	_, err := execute(t, "render", bad, "-o", filepath.Join(dir, "plot.png"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0.0-dev")

	v, err := buildVersion()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v.Major)
}
