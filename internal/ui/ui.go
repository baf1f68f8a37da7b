package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// StepStarted prints a styled status when a bootstrap step begins.
func StepStarted(name string) {
	fmt.Printf("  %s %s\n", dimStyle.Render("..."), name)
}

// StepDone overwrites the "started" line with a completion status.
func StepDone(name, detail string) {
	msg := successStyle.Render("  OK ") + " " + name
	if detail != "" {
		msg += " " + dimStyle.Render(detail)
	}
	fmt.Printf("\033[1A\033[2K%s\n", msg)
}

// StepSkipped overwrites the "started" line with a skip notice.
func StepSkipped(name, reason string) {
	msg := dimStyle.Render("  -- ") + " " + dimStyle.Render(name)
	if reason != "" {
		msg += " " + dimStyle.Render("("+reason+")")
	}
	fmt.Printf("\033[1A\033[2K%s\n", msg)
}

// Success prints a green success message.
func Success(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("Warning: " + msg))
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// Dim renders text in gray.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// CheckOK prints a green check for a passing doctor check.
func CheckOK(name, detail string) {
	fmt.Printf("  %s %s: %s\n", successStyle.Render("OK "), name, detail)
}

// CheckErr prints a red error for a failing doctor check.
func CheckErr(name, message, suggestion string) {
	fmt.Printf("  %s %s: %s\n", errorStyle.Render("ERR"), name, message)
	if suggestion != "" {
		fmt.Printf("      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
