package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when status lines are coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Printer writes status lines, coloured according to its mode.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPrinter builds a printer for w.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	profile := termenv.Ascii
	switch mode {
	case ColorAlways:
		profile = termenv.TrueColor
	case ColorAuto:
		if IsTerminal(w) {
			profile = termenv.NewOutput(w).EnvColorProfile()
		}
	}
	return &Printer{out: w, profile: profile}
}

func (p *Printer) line(hex, symbol, format string, args ...any) {
	s := p.profile.String(symbol + " " + fmt.Sprintf(format, args...)).Foreground(p.profile.Color(hex))
	fmt.Fprintln(p.out, s)
}

// Success prints a green status line.
func (p *Printer) Success(format string, args ...any) {
	p.line("#22c55e", "✔", format, args...)
}

// Warn prints a yellow status line.
func (p *Printer) Warn(format string, args ...any) {
	p.line("#eab308", "!", format, args...)
}

// Failure prints a red status line.
func (p *Printer) Failure(format string, args ...any) {
	p.line("#ef4444", "✘", format, args...)
}
