package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// palette colors command output. Every color is disabled unless the writer is
// a terminal and --no-color was not given.
type palette struct {
	numeric   *color.Color
	formatted *color.Color
	nan       *color.Color
	unchanged *color.Color
}

func newPalette(w io.Writer, enabled bool) palette {
	p := palette{
		numeric:   color.New(color.FgGreen),
		formatted: color.New(color.FgCyan),
		nan:       color.New(color.FgRed, color.Bold),
		unchanged: color.New(color.FgYellow),
	}

	on := enabled && isTerminal(w)
	for _, c := range []*color.Color{p.numeric, p.formatted, p.nan, p.unchanged} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
