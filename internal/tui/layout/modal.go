package layout

// modalMargin keeps a modal's border off the terminal edges.
const modalMargin = 4

// CalculateModalWidth returns the width of the delete confirmation dialog:
// cfg.DefaultWidthPercent of the terminal, held within cfg.MinWidth and
// cfg.MaxWidth, and never wider than the terminal minus modalMargin.
func CalculateModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.DefaultWidthPercent / 100
	width = min(max(width, cfg.MinWidth), cfg.MaxWidth)
	width = min(width, terminalWidth-modalMargin)
	return max(width, 1)
}
