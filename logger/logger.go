package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	prefixLen = 8
)

// Init configures the global logrus logger.
// verbosity 0 logs info, 1 debug and anything above trace.
// An empty logFile keeps output on stderr only.
func Init(verbosity int, logFile string) error {
	var output io.Writer = os.Stderr

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return errors.Wrapf(err, "create log directory for %q", logFile)
		}

		output = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5,
			MaxAge:     14,
			MaxBackups: 5,
		})
	}

	logrus.SetOutput(output)
	logrus.SetLevel(levelFor(verbosity))
	logrus.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})

	return nil
}

func levelFor(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.InfoLevel
	case verbosity == 1:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// GetLogger returns an entry tagged with the given prefix.
func GetLogger(prefix string) *logrus.Entry {
	if len(prefix) > prefixLen {
		prefixLen = len(prefix)
	}

	return logrus.WithField("prefix", fmt.Sprintf("%-*s", prefixLen, prefix))
}
