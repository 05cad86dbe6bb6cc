package tui

import (
	"strings"

	"github.com/nikbrunner/techbook/internal/model"
	"github.com/nikbrunner/techbook/internal/tui/layout"
)

// renderCard renders one bookmark card: icon and name, url, category tag.
// width is the card's content width, excluding its border.
func (a App) renderCard(b model.Bookmark, selected bool, width int) string {
	textWidth := layout.CalculateItemWidth(width, a.layoutConfig.Grid)
	text := a.layoutConfig.Text

	icon := b.Icon
	nameWidth := textWidth - layout.VisibleLength(icon) - 1
	name, _ := layout.TruncateText(b.Name, nameWidth, text)
	url, _ := layout.TruncateText(b.URL, textWidth, text)
	tag, _ := layout.TruncateWithPrefixSuffix(b.Category, textWidth, "[", "]", text)

	lines := []string{
		icon + " " + a.styles.Name.Render(name),
		a.styles.URL.Render(url),
		a.styles.CategoryTag.Render(tag),
	}

	style := a.styles.Card
	if selected {
		style = a.styles.CardSelected
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
