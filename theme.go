package herald

// Theme defines semantic color mappings using ANSI color indices (0-15)
// for the console harness. The user's terminal theme determines the actual
// RGB values. Embed colors are not themed; they render as given.
type Theme struct {
	Operator int // Operator input echo
	Notice   int // Private notices
	Error    int // Error notices
	Success  int // Confirmations
	Muted    int // Status bar, placeholders, timestamps
	Channel  int // Channel names
	Accent   int // Headings, links, form titles
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Operator: 4,
		Notice:   6,
		Error:    1,
		Success:  2,
		Muted:    8,
		Channel:  3,
		Accent:   5,
	}
}
