package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCliLogger(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	logger := NewCliLogger(&stdout, &stderr, false)
	logger.Debug("debug message")
	logger.Infof("info %s", "message")
	logger.Warn("warn message")
	logger.Error("error message")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "info message\n", stdout.String())
	assert.Equal(t, "warn message\nerror message\n", stderr.String())
}

func TestCliLoggerVerbose(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	logger := NewCliLogger(&stdout, &stderr, true)
	logger.Debug("debug message")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "debug message\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestDebugLogger(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warnf("warn %d", 123)
	logger.Error("error message")

	assert.Equal(t, "DEBUG  debug message\n", logger.DebugMessages())
	assert.Equal(t, "INFO  info message\n", logger.InfoMessages())
	assert.Equal(t, "WARN  warn 123\nERROR  error message\n", logger.WarnAndErrorMessages())

	logger.Truncate()
	assert.Empty(t, logger.AllMessages())
}

func TestLevelWriter(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	w := logger.InfoWriter()
	w.WriteString("first line\nsecond line")
	w.Writef("third %s", "line")
	assert.Equal(t, "INFO  first line\nINFO  second line\nINFO  third line\n", logger.InfoMessages())
}
