// Package logger builds the leveled, module-tagged loggers used across rdsim.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
)

const defaultFormat = `%{color}%{level:.1s}%{time:15:04:05.000} %{module}%{color:reset}: %{message}`

// Logger is the subset of go-logging used by the simulator and its tools.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Criticalf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger returns a logger for module writing to stderr. Unknown levels
// fall back to INFO.
func NewLogger(level string, module string) Logger {
	return NewLoggerTo(os.Stderr, level, module)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, level string, module string) Logger {
	log := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultFormat))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	return &moduleLogger{Logger: log, leveled: leveled}
}

// moduleLogger answers level queries from its own backend. The embedded
// Logger's IsEnabledFor consults the package-wide default backend instead.
type moduleLogger struct {
	*logging.Logger
	leveled logging.LeveledBackend
}

func (l *moduleLogger) IsEnabledFor(level logging.Level) bool {
	return l.leveled.IsEnabledFor(level, l.Module)
}

// ParseTime splits elapsed into whole hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return hours, minutes, seconds
}
