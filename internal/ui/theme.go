package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string

	Border        string
	BorderFocus   string
	SelectionBg   string
	SelectionText string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(18),
	}
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Panel      lipgloss.Style
	FocusPanel lipgloss.Style
	Selected   lipgloss.Style
	FieldLabel lipgloss.Style
}

var themes = map[string]Theme{
	"Frost": {
		Name:          "Frost",
		Text:          "#e5e9f0",
		Muted:         "#7b88a1",
		Accent:        "#88c0d0",
		Success:       "#a3be8c",
		Warning:       "#ebcb8b",
		Danger:        "#bf616a",
		Border:        "#4c566a",
		BorderFocus:   "#88c0d0",
		SelectionBg:   "#88c0d0",
		SelectionText: "#2e3440",
	},
	"Ember": {
		Name:          "Ember",
		Text:          "#f2e9e4",
		Muted:         "#9a8c98",
		Accent:        "#e07a5f",
		Success:       "#81b29a",
		Warning:       "#f2cc8f",
		Danger:        "#e63946",
		Border:        "#4a4e69",
		BorderFocus:   "#e07a5f",
		SelectionBg:   "#e07a5f",
		SelectionText: "#22223b",
	},
}

// GetTheme returns the named theme, falling back to Frost.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Frost"]
}

// NextTheme returns the theme after the given one, wrapping around.
func NextTheme(current string) string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
