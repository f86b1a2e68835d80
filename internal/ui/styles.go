package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the menu widget.
type Styles struct {
	Title     lipgloss.Style
	Item      lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
}

// NewStyles creates a Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(1, 2),
	}
}
