package logzer

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	logFile   io.WriteCloser
	errBuffer = &LogBuffer{
		Level: zerolog.ErrorLevel,
		Size:  10,
	}
	formatter = &zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	sink zerolog.LevelWriter = zerolog.MultiLevelWriter(formatter, errBuffer)
)

// Option defines logger option type
type Option func()

// NewWriter builds the logging sink with options applied,
// keeping the last error records available via LastErrors
func NewWriter(opts ...Option) zerolog.LevelWriter {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	lastErrors := LastErrors()
	for _, opt := range opts {
		opt()
	}
	for _, p := range lastErrors {
		_, _ = errBuffer.WriteLevel(p.lvl, p.buf)
	}
	if logFile != nil {
		formatter.Out = zerolog.MultiLevelWriter(os.Stdout, logFile)
	} else {
		formatter.Out = os.Stdout
	}
	sink = zerolog.MultiLevelWriter(formatter, errBuffer)
	return sink
}

// WithColors enables colorized console output
func WithColors(b bool) Option {
	return func() { formatter.NoColor = !b }
}

// WithLastErrors sets count of buffered error writes
func WithLastErrors(n int) Option {
	return func() {
		*errBuffer = LogBuffer{
			Level: zerolog.ErrorLevel,
			Size:  n,
		}
	}
}

// WithLevel sets level option
func WithLevel(lvl zerolog.Level) Option {
	return func() { zerolog.SetGlobalLevel(lvl) }
}

// WithLogFile sets filelog option
func WithLogFile(w io.WriteCloser) Option {
	return func() {
		if logFile != nil {
			_ = logFile.Close()
		}
		logFile = w
	}
}

// WithTimeFormat sets formatter option
func WithTimeFormat(s string) Option {
	return func() { formatter.TimeFormat = s }
}

// LastErrors returns last error writes
func LastErrors() []LogRecord {
	return errBuffer.Records()
}

// WriteLogBuffer writes buffered data to current logger
func WriteLogBuffer(lb *LogBuffer) {
	lvl := zerolog.GlobalLevel()
	for _, p := range lb.Records() {
		if p.lvl >= lvl {
			_, _ = sink.WriteLevel(p.lvl, p.buf)
		}
	}
}
