// Package ui renders command output: colored quartile labels, summary
// tables and plain-text fallbacks for non-terminal output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true
)

// DisableColors disables all color output.
func DisableColors() {
	colorEnabled = false
	initStyles()
}

// IsTerminal reports whether stdout is a color-capable terminal.
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// Section prints a section header.
func Section(title string) {
	fmt.Println()
	if IsTerminal() {
		fmt.Println("━━━ " + strings.ToUpper(title) + " ━━━")
	} else {
		fmt.Println(strings.ToUpper(title))
		fmt.Println(strings.Repeat("=", len(title)+6))
	}
}

// Count formats a row count with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
