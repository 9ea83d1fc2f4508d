package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// theme holds the styles for one output stream.
type theme struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
	selected lipgloss.Style
	tab      lipgloss.Style
}

func newTheme(w io.Writer, color bool) theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return theme{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		heading: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
		value: r.NewStyle(),
		err: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		help: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		selected: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
		tab: r.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
