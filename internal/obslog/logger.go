// Package obslog provides structured logging for SoundBridge plugins and
// tooling, off by default inside a loaded plugin process and reporting
// errors to Sentry when configured.
package obslog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
)

// Level mirrors the severities a caller can set or log at.
type Level = log.Level

const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
	LevelFatal = log.FatalLevel
)

// Logger wraps a charmbracelet/log logger with an enable switch, off by
// default: a plugin loaded inside a host process must not write to stderr
// unless a developer explicitly turns logging on, since hosts vary in how
// they handle (or hide) a loaded module's own output streams.
type Logger struct {
	inner   *log.Logger
	enabled atomic.Bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

func init() {
	defaultLogger = New(os.Stderr, "")
}

// New creates a Logger writing to w, disabled until SetEnabled(true) is
// called.
func New(w io.Writer, prefix string) *Logger {
	inner := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	l := &Logger{inner: inner}
	l.enabled.Store(false)
	return l
}

// SetOutput redirects where log lines are written.
func (l *Logger) SetOutput(w io.Writer) { l.inner.SetOutput(w) }

// SetLevel sets the minimum level that reaches the output.
func (l *Logger) SetLevel(level Level) { l.inner.SetLevel(level) }

// SetPrefix sets the logger's prefix.
func (l *Logger) SetPrefix(prefix string) { l.inner.SetPrefix(prefix) }

// SetEnabled turns logging on or off; disabled Loggers drop every call
// before it reaches charmbracelet/log, not merely below a level filter.
func (l *Logger) SetEnabled(enabled bool) { l.enabled.Store(enabled) }

// IsEnabled reports whether the logger is currently active.
func (l *Logger) IsEnabled() bool { return l.enabled.Load() }

// With returns a derived logger carrying the given key/value pairs on
// every subsequent call.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	derived := &Logger{inner: l.inner.With(keyvals...)}
	derived.enabled.Store(l.enabled.Load())
	return derived
}

func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	if l.enabled.Load() {
		l.inner.Debug(msg, keyvals...)
	}
}

func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	if l.enabled.Load() {
		l.inner.Info(msg, keyvals...)
	}
}

func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	if l.enabled.Load() {
		l.inner.Warn(msg, keyvals...)
	}
}

// Error logs at error level and, if InitSentry configured a Sentry DSN, reports
// err (when non-nil) as an exception event.
func (l *Logger) Error(msg interface{}, err error, keyvals ...interface{}) {
	if l.enabled.Load() {
		all := keyvals
		if err != nil {
			all = append(all, "error", err)
		}
		l.inner.Error(msg, all...)
	}
	if err != nil {
		sentry.CaptureException(err)
	}
}

// Fatal logs at fatal level, reports to Sentry, flushes pending events,
// and terminates the process — reserved for cmd/plugbuild and other
// non-host-process entry points; a loaded plugin must never call os.Exit.
func (l *Logger) Fatal(msg interface{}, keyvals ...interface{}) {
	if l.enabled.Load() {
		// Log rather than inner.Fatal: the latter exits before Sentry flushes.
		l.inner.Log(log.FatalLevel, msg, keyvals...)
	}
	sentry.CaptureMessage(fmt.Sprint(msg))
	sentry.Flush(2_000_000_000)
	os.Exit(1)
}

// Default returns the package-wide logger instance.
func Default() *Logger { return defaultLogger }

func SetOutput(w io.Writer)    { defaultLogger.SetOutput(w) }
func SetLevel(level Level)     { defaultLogger.SetLevel(level) }
func SetPrefix(prefix string)  { defaultLogger.SetPrefix(prefix) }
func SetEnabled(enabled bool)  { defaultLogger.SetEnabled(enabled) }
func IsEnabled() bool          { return defaultLogger.IsEnabled() }

func Debug(msg interface{}, keyvals ...interface{}) { defaultLogger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { defaultLogger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { defaultLogger.Warn(msg, keyvals...) }
func Error(msg interface{}, err error, keyvals ...interface{}) {
	defaultLogger.Error(msg, err, keyvals...)
}
func Fatal(msg interface{}, keyvals ...interface{}) { defaultLogger.Fatal(msg, keyvals...) }

// InitSentry configures the process-wide Sentry client used by Error/Fatal.
// Safe to call once at process start (cmd/plugbuild, or a plugin's own
// init if it opts in to crash reporting); a zero-value dsn disables
// reporting silently.
func InitSentry(dsn, release string) error {
	if dsn == "" {
		return nil
	}
	var err error
	once.Do(func() {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: release,
		})
	})
	return err
}
