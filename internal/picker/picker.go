// Package picker is a small full-screen chooser for quick-open results.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/techbook/internal/model"
	"github.com/nikbrunner/techbook/internal/search"
	"github.com/nikbrunner/techbook/internal/tui/layout"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	subtle = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}

	selectedStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"})

	matchStyle = lipgloss.NewStyle().
			Underline(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(subtle)
)

// linesPerResult is the height of one entry: name line and url line.
const linesPerResult = 2

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("j", "down", "ctrl+n")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Picker is a simple TUI for choosing one of several fuzzy matches.
type Picker struct {
	results   []search.Result
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker over results ranked for query.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, keys.Select):
			if len(p.results) == 0 {
				p.cancelled = true
			} else {
				p.selected = true
			}
			return p, tea.Quit

		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}

		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Open: %s (%d matches)", p.query, len(p.results))))
	b.WriteString("\n")

	// Header (2) and footer (2) lines stay fixed
	visible := (p.height - 4) / linesPerResult
	if visible < 1 {
		visible = 1
	}
	offset := layout.CalculateViewportOffset(p.cursor, len(p.results), visible)

	textCfg := layout.DefaultConfig().Text
	urlWidth := p.width - 3

	for i := offset; i < len(p.results) && i < offset+visible; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		name := highlight(result.Bookmark.Name, result.MatchedIndexes, style)
		url, _ := layout.TruncateText(result.Bookmark.URL, urlWidth, textCfg)

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, result.Bookmark.Icon, name))
		b.WriteString(fmt.Sprintf("   %s\n", urlStyle.Render(url)))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// highlight renders name with the fuzzy-matched characters underlined.
func highlight(name string, matched []int, style lipgloss.Style) string {
	if len(matched) == 0 {
		return style.Render(name)
	}

	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if hits[i] {
			b.WriteString(style.Inherit(matchStyle).Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedBookmark returns the chosen bookmark, or nil if the user cancelled.
func (p Picker) SelectedBookmark() *model.Bookmark {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Bookmark
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
