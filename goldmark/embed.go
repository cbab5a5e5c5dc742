package goldmark

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/herald"
)

// RenderContent previews a dispatch payload: the message text followed by
// its embed, if any.
func RenderContent(c herald.Content, width int, theme herald.Theme, names ChannelNames) string {
	var parts []string
	if c.Text != "" {
		parts = append(parts, Render(c.Text, width, theme, names))
	}
	if c.Embed != nil {
		parts = append(parts, RenderEmbed(*c.Embed, width, theme, names))
	}
	return strings.Join(parts, "\n")
}

// RenderEmbed draws an embed as a card with a left bar in the embed's
// color.
func RenderEmbed(e herald.Embed, width int, theme herald.Theme, names ChannelNames) string {
	if width <= 0 {
		width = 80
	}
	inner := max(width-2, 10)
	muted := lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true)

	var lines []string
	if e.ThumbnailURL != "" {
		lines = append(lines, muted.Render("[thumbnail] "+e.ThumbnailURL))
	}
	if e.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Width(inner).Render(e.Title))
	}
	if e.Description != "" {
		lines = append(lines, Render(e.Description, inner, theme, names))
	}
	if e.ImageURL != "" {
		lines = append(lines, muted.Render("[image] "+e.ImageURL))
	}
	if e.Footer != "" {
		lines = append(lines, muted.Render(e.Footer))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(EmbedColor(e.Color)).
		PaddingLeft(1)
	return card.Render(strings.Join(lines, "\n"))
}

// EmbedColor converts a 24-bit embed color to a terminal color.
func EmbedColor(c int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", c&0xFFFFFF))
}
