package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"qazaqspace/internal/risk"
	"qazaqspace/internal/session"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
	colorCyan   = "\x1b[36m"
	colorGray   = "\x1b[90m"
)

const defaultWidth = 80

// ColorWriter prints human-friendly, colorized outcomes.
type ColorWriter struct {
	out   io.Writer
	width int
}

// TerminalWidth returns the stdout terminal width, or 80 columns when stdout
// is not a terminal.
func TerminalWidth() int {
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// NewColorWriter creates a ColorWriter writing to w. A non-positive width
// disables wrapping.
func NewColorWriter(w io.Writer, width int) *ColorWriter {
	return &ColorWriter{out: w, width: width}
}

// TierColor returns the ANSI color of a risk tier.
func TierColor(t risk.Tier) string {
	switch t {
	case risk.High:
		return colorRed
	case risk.Medium:
		return colorYellow
	default:
		return colorGreen
	}
}

// WriteOutcome outputs one outcome in colorized format.
func (w *ColorWriter) WriteOutcome(o session.Outcome) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]%s %s%s%s", colorGray, o.Time.Format("15:04:05"), colorReset,
		colorBlue, strings.ToUpper(string(o.Action)), colorReset)
	if o.Input != "" {
		fmt.Fprintf(&b, " %q", o.Input)
	}
	if o.Intent != "" {
		fmt.Fprintf(&b, " %sintent=%s%s", colorCyan, o.Intent, colorReset)
	}
	fmt.Fprintf(&b, " %s %s%s%s\n", o.Sample, TierColor(o.Risk.Tier), o.Risk, colorReset)
	if o.Warning != "" {
		fmt.Fprintf(&b, "  %s%s%s\n", colorYellow, w.wrap(o.Warning), colorReset)
	}
	for _, l := range o.Lines {
		fmt.Fprintf(&b, "  %s\n", w.wrap(l))
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *ColorWriter) wrap(s string) string {
	if w.width <= 2 {
		return s
	}
	return strings.ReplaceAll(wordwrap.String(s, w.width-2), "\n", "\n  ")
}
