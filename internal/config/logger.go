package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the logger described by c.Log. Without a log file it writes
// to fallback. The returned close func releases the file, if any.
func (c *Config) NewLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := c.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	w, closeFn := fallback, func() error { return nil }
	if c.Log.File != "" {
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "shmup",
	})
	return logger, closeFn, nil
}
