// Package logging builds the slog handlers used by the command line.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options controls the terminal handler
type Options struct {
	// Level is the minimum level that is written
	Level slog.Leveler

	// NoColor forces plain output even when w is a terminal
	NoColor bool
}

// NewTerminalHandler returns a human-readable handler writing to w.
// Colours are only used when w is a terminal and NoColor is unset.
func NewTerminalHandler(w io.Writer, opts Options) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor || !IsTerminal(w),
	})
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
