// Package platform provides terminal, output, configuration and logging
// helpers shared by the CLI commands and the TUI.
package platform

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled controls whether ANSI escape codes are emitted.
// Set once by InitColor().
var colorEnabled bool

// InitColor determines whether color output should be enabled.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY stdout.
func InitColor() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
		return
	}
	if os.Getenv("TERM") == "dumb" {
		colorEnabled = false
		return
	}
	colorEnabled = StdoutIsTerminal()
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ANSI escape codes
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

func apply(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

func Bold(s string) string     { return apply(ansiBold, s) }
func Dim(s string) string      { return apply(ansiDim, s) }
func Red(s string) string      { return apply(ansiRed, s) }
func Green(s string) string    { return apply(ansiGreen, s) }
func Yellow(s string) string   { return apply(ansiYellow, s) }
func Cyan(s string) string     { return apply(ansiCyan, s) }
func BoldCyan(s string) string { return apply(ansiBold+ansiCyan, s) }

// PrintBanner prints a bold cyan banner line: "\n=== title ===\n"
func PrintBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", BoldCyan("=== "+title+" ==="))
}

// PrintSection prints a cyan section header: "\n--- title ---\n"
func PrintSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", Cyan("--- "+title+" ---"))
}

// PrintField prints an aligned "  label: value" line with a bold label.
func PrintField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", Bold(fmt.Sprintf("%-12s", label+":")), value)
}

// PrintWarningLine prints a yellow message: "  msg\n"
func PrintWarningLine(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s\n", Yellow(msg))
}

// PrintErrorLine prints a red message: "  msg\n"
func PrintErrorLine(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s\n", Red(msg))
}
