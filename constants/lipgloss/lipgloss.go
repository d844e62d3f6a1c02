package lipgloss

import (
	lip "github.com/charmbracelet/lipgloss"
)

// Shared terminal styles. The palette follows the default dracula theme so
// highlighted code and status lines sit together visually.
var (
	Red    = lip.NewStyle().Foreground(lip.Color("#FF5555"))
	Green  = lip.NewStyle().Foreground(lip.Color("#50FA7B"))
	Yellow = lip.NewStyle().Foreground(lip.Color("#F1FA8C"))
	Info   = lip.NewStyle().Foreground(lip.Color("#8BE9FD"))
	Violet = lip.NewStyle().Foreground(lip.Color("#BD93F9"))

	// BoxStyle frames report headers.
	BoxStyle = lip.NewStyle().
			Border(lip.RoundedBorder()).
			BorderForeground(lip.Color("#BD93F9")).
			Padding(0, 1)
)
