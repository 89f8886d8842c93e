package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	dimStyle     lipgloss.Style

	quartileStyles map[string]lipgloss.Style
)

func init() {
	initStyles()
}

func initStyles() {
	if !IsTerminal() {
		plain := lipgloss.NewStyle()
		successStyle = plain
		errorStyle = plain
		warningStyle = plain
		dimStyle = plain
		quartileStyles = map[string]lipgloss.Style{}
		return
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Q1 best to Q4 weakest, green through red; NOT FOUND dimmed.
	quartileStyles = map[string]lipgloss.Style{
		"Q1":        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"Q2":        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		"Q3":        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"Q4":        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"NOT FOUND": dimStyle,
	}
}

// Quartile renders a quartile label (or the NOT FOUND sentinel) in its
// tier color.
func Quartile(label string) string {
	if style, ok := quartileStyles[label]; ok {
		return style.Render(label)
	}
	return label
}

// Success prints success text
func Success(text string) string {
	return successStyle.Render(text)
}

// Error prints error text
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning prints warning text
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Dim prints dim text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// SuccessMsg prints a success message
func SuccessMsg(format string, args ...interface{}) {
	fmt.Println(Success("✓") + " " + fmt.Sprintf(format, args...))
}

// ErrorMsg prints an error message
func ErrorMsg(format string, args ...interface{}) {
	fmt.Println(Error("✗") + " " + fmt.Sprintf(format, args...))
}

// WarningMsg prints a warning message
func WarningMsg(format string, args ...interface{}) {
	fmt.Println(Warning("⚠") + " " + fmt.Sprintf(format, args...))
}
