// Package ui renders the app as a Bubble Tea program. Each view of the
// session gets its own render routine; the session itself holds all state
// that matters, the model only carries component and cursor plumbing.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"apocalipsis/internal/config"
)

// Styles groups the lipgloss styles derived from the color config.
type Styles struct {
	Header    lipgloss.Style
	Accent    lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Cursor    lipgloss.Style
	Card      lipgloss.Style
	Overlay   lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set from a color config.
func NewStyles(cfg config.Config) Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.HeaderColor)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AccentColor)),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.TextColor)),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.DimColor)),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color(cfg.HighlightColor)),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ErrorColor)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.AccentColor)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.DimColor)).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(cfg.AccentColor)).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1),
	}
}
