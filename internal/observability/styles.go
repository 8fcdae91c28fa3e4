// Package observability renders styled terminal reports for scan results.
package observability

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors mirror the status palette embedded in scan responses, so the
// terminal report and a web rendering of the same payload agree.
var (
	// ColorGood marks proven skills and strong scores.
	ColorGood = lipgloss.Color("#22c55e")

	// ColorMedium marks partially proven skills.
	ColorMedium = lipgloss.Color("#f59e0b")

	// ColorBad marks skills with little or no evidence.
	ColorBad = lipgloss.Color("#ef4444")

	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorMuted is used for secondary text and rules.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleGood is used for proven values.
	StyleGood = lipgloss.NewStyle().
			Foreground(ColorGood)

	// StyleMedium is used for partially proven values.
	StyleMedium = lipgloss.NewStyle().
			Foreground(ColorMedium)

	// StyleBad is used for unproven values.
	StyleBad = lipgloss.NewStyle().
			Foreground(ColorBad)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally. When disabled,
// all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleGood = plain
		StyleMedium = plain
		StyleBad = plain
		StyleMuted = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoDetectColor disables styling when f is not an interactive
// terminal, so piped and redirected output stays clean.
func AutoDetectColor(f *os.File) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		SetNoColor(true)
	}
}
