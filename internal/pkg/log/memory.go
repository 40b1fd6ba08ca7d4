package log

import (
	"bufio"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDebugLogger captures all messages to a memory buffer, for use in tests.
func NewDebugLogger() DebugLogger {
	buffer := &memoryBuffer{}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "message",
			LevelKey:         "level",
			LineEnding:       "\n",
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: "  ",
		}),
		zapcore.AddSync(buffer),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return true
		}),
	)
	return &debugLogger{zapLogger: loggerFromZap(zap.New(core)), buffer: buffer}
}

type debugLogger struct {
	*zapLogger
	buffer *memoryBuffer
}

type memoryBuffer struct {
	lock  sync.Mutex
	lines strings.Builder
}

func (b *memoryBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.lines.Write(p)
}

func (b *memoryBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.lines.String()
}

func (b *memoryBuffer) Reset() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.lines.Reset()
}

func (l *debugLogger) Truncate() {
	l.buffer.Reset()
}

func (l *debugLogger) AllMessages() string {
	return l.messages("")
}

func (l *debugLogger) DebugMessages() string {
	return l.messages("DEBUG")
}

func (l *debugLogger) InfoMessages() string {
	return l.messages("INFO")
}

func (l *debugLogger) WarnMessages() string {
	return l.messages("WARN")
}

func (l *debugLogger) ErrorMessages() string {
	return l.messages("ERROR")
}

func (l *debugLogger) WarnAndErrorMessages() string {
	return l.messages("WARN") + l.messages("ERROR")
}

// messages returns all logged lines with the given level prefix, empty prefix matches all lines.
func (l *debugLogger) messages(level string) string {
	_ = l.Sync()
	var out strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(l.buffer.String()))
	for scanner.Scan() {
		line := scanner.Text()
		if level == "" || strings.HasPrefix(line, level+"  ") {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}
