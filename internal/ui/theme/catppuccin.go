package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sky      = lipgloss.Color("#89dceb")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	// State colors. Borders and text of a box share one of these.
	Active  = Sky
	Done    = Green
	Warning = Yellow
	Danger  = Red
	Passive = Overlay0

	App = lipgloss.NewStyle().Padding(2, 2)

	Cursor = lipgloss.NewStyle().Reverse(true)

	Title   = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	HelpKey = lipgloss.NewStyle().Foreground(Peach).Bold(true)
)

// ForUrgency colors the text box while writing.
func ForUrgency(urgency string) lipgloss.Color {
	switch urgency {
	case "danger":
		return Danger
	case "warning":
		return Warning
	default:
		return Active
	}
}

// ForWordGoal shows a pending word goal as a warning.
func ForWordGoal(status string) lipgloss.Color {
	switch status {
	case "done":
		return Done
	case "active":
		return Warning
	default:
		return Passive
	}
}

func ForTimeGoal(status string) lipgloss.Color {
	switch status {
	case "done":
		return Done
	case "active":
		return Active
	default:
		return Passive
	}
}
