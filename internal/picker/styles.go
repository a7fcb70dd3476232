package picker

import "github.com/charmbracelet/lipgloss"

// CursorMarker is the prefix shown on the selected commit row.
const CursorMarker = "> "

// bodyIndent prefixes expanded message body lines.
const bodyIndent = "    "

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})

	indicatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})

	shaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})

	selectedStyle = lipgloss.NewStyle().Reverse(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "250"})

	// plainStyle renders text unstyled; used for unselected rows so the
	// render path is uniform.
	plainStyle = lipgloss.NewStyle()
)
