package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Heading       lipgloss.Style
	NavItem       lipgloss.Style
	NavActive     lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Link          lipgloss.Style
	Button        lipgloss.Style
	Chip          lipgloss.Style
	Slide         lipgloss.Style
	Card          lipgloss.Style
	Star          lipgloss.Style
	StarEmpty     lipgloss.Style
	Badge         lipgloss.Style
	DotActive     lipgloss.Style
	DotInactive   lipgloss.Style
	Cursor        lipgloss.Style
	InfoBox       lipgloss.Style
	PopupBackdrop lipgloss.Color
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("24")).
			Bold(true).
			Padding(0, 2),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("238")).
			Padding(0, 1).
			MarginRight(1),
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2).
			Align(lipgloss.Center),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Star:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StarEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		DotActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		DotInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		PopupBackdrop: lipgloss.Color("236"),
	}
}
