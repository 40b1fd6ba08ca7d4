package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates a logger for the CLI:
// info messages go to stdout, warnings and errors go to stderr,
// debug messages are included if verbose = true.
func NewCliLogger(stdout io.Writer, stderr io.Writer, verbose bool) Logger {
	var cores []zapcore.Core
	cores = append(cores, stdoutCore(stdout, verbose))
	cores = append(cores, stderrCore(stderr))
	return loggerFromZap(zap.New(zapcore.NewTee(cores...)))
}

// NewNopLogger drops all messages.
func NewNopLogger() Logger {
	return loggerFromZap(zap.NewNop())
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	minLevel := InfoLevel
	if verbose {
		minLevel = DebugLevel
	}

	return zapcore.NewCore(
		consoleEncoder(),
		zapcore.AddSync(stdout),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= minLevel && l < WarnLevel
		}),
	)
}

func stderrCore(stderr io.Writer) zapcore.Core {
	return zapcore.NewCore(
		consoleEncoder(),
		zapcore.AddSync(stderr),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= WarnLevel
		}),
	)
}

// consoleEncoder writes only the message, without level and timestamp.
func consoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:  "message",
		LineEnding:  "\n",
		EncodeLevel: nil,
		EncodeTime:  nil,
	})
}
