package cli

import (
	"fmt"
	"io"
)

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colCyan   = "\033[36m"
)

// Style wraps strings in ANSI codes, or passes them through when color
// is off.
type Style struct {
	Color bool
}

func (s Style) c(code, text string) string {
	if !s.Color {
		return text
	}
	return code + text + colReset
}

func (s Style) Bold(text string) string { return s.c(colBold, text) }
func (s Style) Dim(text string) string  { return s.c(colDim, text) }
func (s Style) Good(text string) string { return s.c(colGreen, text) }
func (s Style) Warn(text string) string { return s.c(colYellow, text) }
func (s Style) Bad(text string) string  { return s.c(colRed, text) }
func (s Style) Cyan(text string) string { return s.c(colCyan, text) }

// Section prints a titled divider.
func (s Style) Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s %s %s\n", s.Dim("──"), s.Bold(title), s.Dim("──"))
}
