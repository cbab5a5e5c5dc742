package console

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/herald"
)

// Styles maps a Theme to lipgloss styles for the console.
type Styles struct {
	Operator  lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
	Channel   lipgloss.Style
	Accent    lipgloss.Style
	FormFocus lipgloss.Style
	FormBlur  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t herald.Theme) Styles {
	return Styles{
		Operator:  lipgloss.NewStyle().Foreground(ansiColor(t.Operator)).Bold(true),
		Notice:    lipgloss.NewStyle().Foreground(ansiColor(t.Notice)),
		Error:     lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:   lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Channel:   lipgloss.NewStyle().Foreground(ansiColor(t.Channel)).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		FormFocus: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)),
		FormBlur:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
