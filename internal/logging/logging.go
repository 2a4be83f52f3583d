// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing plain text to dst.
// quiet raises the level to error regardless of level.
func New(dst io.Writer, level string, quiet bool) (*logrus.Logger, error) {
	lg := logrus.New()
	lg.SetOutput(dst)
	lg.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet && lvl > logrus.ErrorLevel {
		lvl = logrus.ErrorLevel
	}
	lg.SetLevel(lvl)
	return lg, nil
}

// ParseLevel accepts logrus level names; empty means info.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return lvl, nil
}

// Discard is a logger that drops everything. Handy for library callers and tests.
func Discard() *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	lg.SetLevel(logrus.PanicLevel)
	return lg
}
