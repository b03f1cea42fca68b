// Package ui renders stage progress for the user.
package ui

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/NielsdaWheelz/sniperctl/internal/core"
)

// Printer writes stage progress lines, colored when the output is a terminal.
type Printer struct {
	w       io.Writer
	colored bool
}

// NewPrinter returns a Printer writing to w. Color is used only when w is a
// terminal and NO_COLOR is unset.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	return &Printer{w: w, colored: !noColor && IsTTY(w)}
}

// StageStarted implements pipeline.Reporter.
func (p *Printer) StageStarted(name string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.paint(color.Cyan, "==>"), p.paint(color.Bold, name))
}

// StageSucceeded implements pipeline.Reporter.
func (p *Printer) StageSucceeded(_ string, res core.StageResult) {
	if res.Message == "" {
		return
	}
	_, _ = fmt.Fprintf(p.w, "    %s %s\n", p.paint(color.Green, "ok"), res.Message)
}

func (p *Printer) paint(c color.Color, s string) string {
	if !p.colored {
		return s
	}
	return c.Sprint(s)
}
