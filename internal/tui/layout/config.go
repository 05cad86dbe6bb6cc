package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Grid  GridConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// GridConfig holds card grid dimension configuration.
type GridConfig struct {
	// HeightReduction is subtracted from terminal height for the grid.
	// Accounts for: app padding (1) + header (3) + controls (3) + spacer (1) + help bar (3) = 11
	HeightReduction int

	// SideReduction is subtracted from terminal width before laying out columns.
	// Accounts for app padding left (2) + right (2).
	SideReduction int

	// MinCardWidth is the narrowest card content width before dropping a column.
	MinCardWidth int

	// CardBorder is the horizontal and vertical space taken by a card's border.
	CardBorder int

	// CardLines is the number of content lines in a card: name, url, category.
	CardLines int

	// Gap is the number of blank columns between cards.
	Gap int

	// ContentPadding is subtracted from card width for text rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpKeyColumnWidth: width of the key column in the help overlay.
	HelpKeyColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit   int
	URLCharLimit    int
	IconCharLimit   int
	SearchCharLimit int

	// Display widths
	StandardWidth int // Used for name and URL
	SearchWidth   int
	IconWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Grid: GridConfig{
			HeightReduction: 11, // app padding (1) + header (3) + controls (3) + spacer (1) + help bar (3)
			SideReduction:   4,
			MinCardWidth:    24,
			CardBorder:      2,
			CardLines:       3,
			Gap:             1,
			ContentPadding:  2,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 50,
			MinWidth:            44,
			MaxWidth:            72,
			HelpKeyColumnWidth:  14,
		},
		Input: InputConfig{
			NameCharLimit:   100,
			URLCharLimit:    500,
			IconCharLimit:   2,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     30,
			IconWidth:       4,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
