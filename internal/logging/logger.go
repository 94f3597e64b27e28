// Package logging builds the app logger on charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/idilsaglam/mindtips/internal/config"
)

// New returns a logger writing to a rotating file when configured, else to
// fallback. The returned closer releases the file; it is a no-op otherwise.
func New(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer) {
	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)
	if cfg.File.Enabled {
		lj := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		w, closer = lj, lj
	}
	if w == nil {
		w = os.Stderr
	}
	return NewWithWriter(cfg, w), closer
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.Level),
		ReportTimestamp: true,
		Formatter:       parseFormatter(cfg.Format),
		Prefix:          "tips",
	})
	return l
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Discard is handy for tests and for the TUI when no log file is configured.
func Discard() *log.Logger { return log.New(io.Discard) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
