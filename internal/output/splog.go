// Package output provides user-facing terminal output for the toolbelt CLI.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured logging and output
type Splog struct {
	writer io.Writer
	quiet  bool
	debug  bool
}

// defaultQuiet is set from the root command's --quiet flag and applies to
// every Splog created afterwards.
var defaultQuiet bool

// SetDefaultQuiet makes subsequently created Splogs start out quiet.
func SetDefaultQuiet(quiet bool) {
	defaultQuiet = quiet
}

// NewSplog creates a new splog instance
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
		quiet:  defaultQuiet,
		debug:  os.Getenv("TOOLBELT_DEBUG") != "",
	}
}

// NewSplogWithWriter creates a splog instance that writes to the given writer
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{
		writer: w,
		debug:  os.Getenv("TOOLBELT_DEBUG") != "",
	}
}

// SetQuiet suppresses all output when enabled
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Page writes raw content without a trailing newline
func (s *Splog) Page(content string) {
	if s.quiet {
		return
	}
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.writer)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.writer, colorWarn("⚠️  "+format)+"\n", args...)
}

// Debug writes a debug message, shown only when TOOLBELT_DEBUG is set
func (s *Splog) Debug(format string, args ...interface{}) {
	if s.quiet || !s.debug {
		return
	}
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.writer, colorTip("💡 "+format)+"\n", args...)
}
