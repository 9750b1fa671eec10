package logger

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, levelFor(-1))
	assert.Equal(t, logrus.InfoLevel, levelFor(0))
	assert.Equal(t, logrus.DebugLevel, levelFor(1))
	assert.Equal(t, logrus.TraceLevel, levelFor(5))
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fplot.log")
	require.NoError(t, Init(1, path))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	require.NoError(t, Init(0, ""))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestGetLoggerPrefix(t *testing.T) {
	entry := GetLogger("render")
	prefix, ok := entry.Data["prefix"].(string)
	require.True(t, ok)
	assert.Contains(t, prefix, "render")
	assert.GreaterOrEqual(t, len(prefix), len("render"))
}
