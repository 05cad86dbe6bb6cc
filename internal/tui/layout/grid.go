package layout

// GridLayout holds calculated card grid dimensions.
type GridLayout struct {
	Columns   int
	CardWidth int // content width of each card, excluding border
}

// CalculateGrid computes how many cards fit per row and how wide each is.
// Cards stretch to fill the row; there is always at least one column.
func CalculateGrid(terminalWidth int, cfg GridConfig) GridLayout {
	available := terminalWidth - cfg.SideReduction
	outerMin := cfg.MinCardWidth + cfg.CardBorder

	columns := (available + cfg.Gap) / (outerMin + cfg.Gap)
	if columns < 1 {
		columns = 1
	}

	cardWidth := (available-(columns-1)*cfg.Gap)/columns - cfg.CardBorder
	if cardWidth < 1 {
		cardWidth = 1
	}

	return GridLayout{
		Columns:   columns,
		CardWidth: cardWidth,
	}
}

// CalculateGridHeight computes the height available for cards.
// Returns at least one card's height.
func CalculateGridHeight(terminalHeight int, cfg GridConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if minHeight := CardHeight(cfg); height < minHeight {
		return minHeight
	}
	return height
}

// CardHeight returns the outer height of one card.
func CardHeight(cfg GridConfig) int {
	return cfg.CardLines + cfg.CardBorder
}

// CalculateVisibleRows computes how many card rows fit in gridHeight.
func CalculateVisibleRows(gridHeight int, cfg GridConfig) int {
	rows := gridHeight / CardHeight(cfg)
	if rows < 1 {
		return 1
	}
	return rows
}

// CalculateItemWidth computes the width available for text inside a card.
func CalculateItemWidth(cardWidth int, cfg GridConfig) int {
	width := cardWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
