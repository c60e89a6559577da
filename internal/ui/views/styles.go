package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Control   lipgloss.Style
	ListBox   lipgloss.Style
	Parent    lipgloss.Style
	Dim       lipgloss.Style
	CursorBg  lipgloss.Style
	Confirm   lipgloss.Style
	Status    lipgloss.Style
	Changed   lipgloss.Style
	Help      lipgloss.Style
	Highlight lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Control: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")),
		ListBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Parent:    lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		CursorBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Confirm:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Changed:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:      lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}
