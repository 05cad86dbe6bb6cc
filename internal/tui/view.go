package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/techbook/internal/manager"
	"github.com/nikbrunner/techbook/internal/tui/layout"
)

const (
	appTitle    = "📖 TechBook"
	appSubtitle = "Quick access to your IT tools and resources"
	emptyText   = "No bookmarks found. Try adjusting your search or category filter."
	addLabel    = "+ Add Bookmark"
	cancelLabel = "✕ Cancel"
)

// renderView creates the complete bookmark grid view.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeConfirmDelete:
		return a.renderModal()
	}

	categories := a.renderCategories()
	sections := []string{
		a.renderHeader(),
		a.renderControls(),
		categories,
	}

	// The grid height reserves one line for the category buttons
	gridHeight := layout.CalculateGridHeight(a.height, a.layoutConfig.Grid) - (lipgloss.Height(categories) - 1)
	if a.mode == ModeAdd {
		form := a.renderForm()
		sections = append(sections, form)
		gridHeight -= lipgloss.Height(form)
	}

	sections = append(sections, "", a.renderGrid(gridHeight), a.renderHelpBar())

	content := a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title and subtitle.
func (a App) renderHeader() string {
	return a.styles.Header.Render(appTitle) + "\n" + a.styles.Subtitle.Render(appSubtitle)
}

// renderControls renders the search box and the add/cancel toggle on one line.
func (a App) renderControls() string {
	searchStyle := a.styles.SearchBox
	if a.mode == ModeSearch {
		searchStyle = a.styles.SearchActive
	}

	toggle := a.styles.HintKey.Render("a") + " " + a.styles.Toggle.Render(addLabel)
	if a.mode == ModeAdd {
		toggle = a.styles.HintKey.Render("esc") + " " + a.styles.Toggle.Render(cancelLabel)
	}

	return searchStyle.Render(a.search.Input.View()) + "   " + toggle
}

// renderCategories renders the category buttons, the active one highlighted,
// wrapping onto more lines when they don't fit the terminal width.
func (a App) renderCategories() string {
	maxWidth := a.width - a.layoutConfig.Grid.SideReduction

	var lines []string
	var line []string
	lineWidth := 0
	for _, c := range a.manager.Categories() {
		style := a.styles.Category
		if c == a.category {
			style = a.styles.CategoryActive
		}
		button := style.Render(c)
		w := lipgloss.Width(button)

		if lineWidth > 0 && lineWidth+w > maxWidth {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineWidth = nil, 0
		}
		line = append(line, button)
		lineWidth += w
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))

	return strings.Join(lines, "\n")
}

// renderForm renders the inline add bookmark form.
func (a App) renderForm() string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("Add Bookmark") + "\n")
	content.WriteString(a.renderField(FieldName, "Name", a.form.NameInput.View()) + "\n")
	content.WriteString(a.renderField(FieldURL, "URL", a.form.URLInput.View()) + "\n")
	content.WriteString(a.renderField(FieldCategory, "Category", a.renderCategorySelector()) + "\n")
	content.WriteString(a.renderField(FieldIcon, "Icon", a.form.IconInput.View()))

	return a.styles.Form.Render(content.String())
}

// renderField renders "label: value" with the label highlighted when focused.
func (a App) renderField(field FormField, label, value string) string {
	labelStyle := a.styles.Label
	if a.form.Focus == field {
		labelStyle = a.styles.LabelActive
	}
	return labelStyle.Width(10).Render(label+":") + value
}

// renderCategorySelector renders the selected category between cycle markers.
func (a App) renderCategorySelector() string {
	if len(a.form.Options) == 0 {
		return a.form.Category
	}
	return "‹ " + a.form.Category + " ›"
}

// renderGrid renders the visible cards in rows, scrolled to keep the cursor
// in view, or the empty state.
func (a App) renderGrid(height int) string {
	if len(a.visible) == 0 {
		return a.styles.Empty.Render(emptyText)
	}

	grid := layout.CalculateGrid(a.width, a.layoutConfig.Grid)
	totalRows := (len(a.visible) + grid.Columns - 1) / grid.Columns
	visibleRows := layout.CalculateVisibleRows(height, a.layoutConfig.Grid)
	offset := layout.CalculateViewportOffset(a.cursor/grid.Columns, totalRows, visibleRows)

	gap := strings.Repeat(" ", a.layoutConfig.Grid.Gap)

	var rows []string
	for row := offset; row < totalRows && row < offset+visibleRows; row++ {
		var cards []string
		for col := 0; col < grid.Columns; col++ {
			i := row*grid.Columns + col
			if i >= len(a.visible) {
				break
			}
			if col > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, a.renderCard(a.visible[i], i == a.cursor, grid.CardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderHelpBar renders the message line, the status line and the hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	// Line 2: Current filter state
	lines = append(lines, a.renderStatusLine())

	// Line 3: Contextual keyboard hints
	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderStatusLine renders the [cat:X] [search:X] [n/total] indicators.
func (a App) renderStatusLine() string {
	var status strings.Builder

	status.WriteString(a.styles.HintLabel.Render("Status "))
	status.WriteString("[cat:" + a.category + "]")
	if term := a.search.Term(); term != "" {
		status.WriteString(" [search:" + term + "]")
	}
	status.WriteString(fmt.Sprintf(" [%d/%d]", len(a.visible), len(a.manager.Bookmarks())))

	return status.String()
}

// renderModal renders the delete confirmation centered above the help bar.
func (a App) renderModal() string {
	var title, content strings.Builder

	// Industrial style: thick borders, teal accent
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	title.WriteString("Delete Bookmark?\n\n")
	content.WriteString("\"" + a.confirm.Name + "\"\n\n")
	content.WriteString(a.styles.Help.Render(manager.DeletePrompt) + "\n\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "Enter/y", Desc: "confirm"},
		{Key: "Esc/n", Desc: "cancel"},
	}))

	modalContent := a.styles.Title.Render(title.String()) + content.String()

	// Place modal in center, then add help bar at bottom
	modal := lipgloss.Place(
		a.width,
		a.height-3, // Leave room for help bar
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(modalContent),
	)

	return lipgloss.JoinVertical(lipgloss.Left, modal, a.renderHelpBar())
}

// renderHelpOverlay renders the full-screen key reference.
func (a App) renderHelpOverlay() string {
	// Brutalist style: no border, just raw columns
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	keyCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpKeyColumnWidth)
	section := func(b *strings.Builder, name string, entries [][2]string) {
		b.WriteString(a.styles.Title.Render(name) + "\n")
		for _, e := range entries {
			b.WriteString(keyCol.Render(e[0]) + e[1] + "\n")
		}
		b.WriteString("\n")
	}

	var left strings.Builder
	section(&left, "nav", [][2]string{
		{"h/j/k/l", "move"},
		{"gg", "top"},
		{"G", "bottom"},
	})
	section(&left, "browse", [][2]string{
		{"/", "search"},
		{"tab", "next category"},
		{"shift+tab", "prev category"},
	})

	var right strings.Builder
	section(&right, "act", [][2]string{
		{"o/enter", "open in browser"},
		{"Y", "yank url"},
		{"a", "add bookmark"},
		{"d", "delete"},
	})
	section(&right, "form", [][2]string{
		{"tab", "next field"},
		{"ctrl+n/p", "cycle category"},
		{"enter", "save"},
		{"esc", "cancel"},
	})
	right.WriteString(a.styles.Help.Render("[?/q/esc] close"))

	cols := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "    ", right.String())

	// Top-left aligned, brutalist style
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(a.styles.Header.Render(appTitle)+"\n\n"+cols),
	)
}
