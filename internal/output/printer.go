// Package output formats command output: tables and tier-aware coloring.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	matchsorter "github.com/AetherXHub/matchsorter"
)

// Printer writes formatted messages, optionally colored.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer on stdout/stderr. Colors are suppressed
// when NO_COLOR is set or when explicitly disabled.
func NewPrinter(noColor bool) *Printer {
	useColors := !noColor
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	if os.Getenv("TERM") == "dumb" {
		useColors = false
	}
	return &Printer{out: os.Stdout, err: os.Stderr, useColors: useColors}
}

// Print writes a plain line.
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error writes an error line to stderr.
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Bold returns text in bold when colors are on.
func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// Dim returns dimmed text when colors are on.
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

// Rank returns the tier name colored by match quality: exact tiers
// green, the substring family cyan, fuzzy yellow, misses dimmed.
func (p *Printer) Rank(r matchsorter.Ranking) string {
	name := r.String()
	if !p.useColors {
		return name
	}
	switch {
	case r.Compare(matchsorter.Equal) >= 0:
		return color.GreenString(name)
	case r.Compare(matchsorter.Acronym) >= 0:
		return color.CyanString(name)
	case !r.IsNoMatch():
		return color.YellowString(name)
	}
	return p.Dim(name)
}
