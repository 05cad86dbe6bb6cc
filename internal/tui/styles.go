package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App            lipgloss.Style
	Header         lipgloss.Style
	Subtitle       lipgloss.Style
	Title          lipgloss.Style
	SearchBox      lipgloss.Style
	SearchActive   lipgloss.Style
	Category       lipgloss.Style
	CategoryActive lipgloss.Style
	Toggle         lipgloss.Style
	Form           lipgloss.Style
	Label          lipgloss.Style
	LabelActive    lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	Name           lipgloss.Style
	URL            lipgloss.Style
	CategoryTag    lipgloss.Style
	Help           lipgloss.Style
	Empty          lipgloss.Style
	HintKey        lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc       lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	HintLabel      lipgloss.Style // Row label in the help bar (e.g., "Status")
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	inverse := lipgloss.Color("#1A1A1A")

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Foreground(subtle).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		SearchBox: lipgloss.NewStyle().
			Foreground(primary),

		SearchActive: lipgloss.NewStyle().
			Foreground(accent),

		Category: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		CategoryActive: lipgloss.NewStyle().
			Padding(0, 1).
			Background(accent).
			Foreground(inverse),

		Toggle: lipgloss.NewStyle().
			Foreground(accent),

		Form: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(subtle),

		LabelActive: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Name: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		CategoryTag: lipgloss.NewStyle().
			Foreground(accent),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		HintLabel: lipgloss.NewStyle().
			Foreground(border),
	}
}
