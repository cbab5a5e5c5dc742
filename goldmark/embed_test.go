package goldmark_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/herald"
	"github.com/fwojciec/herald/goldmark"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmbed(t *testing.T) {
	t.Parallel()

	theme := herald.DefaultTheme()

	t.Run("all parts", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.RenderEmbed(herald.Embed{
			Title:        "Release",
			Description:  "**v2** is out",
			Color:        0xFF0000,
			ImageURL:     "https://example.com/a.png",
			ThumbnailURL: "https://example.com/t.png",
			Footer:       "the team",
		}, 60, theme, nil))

		for _, want := range []string{"Release", "v2 is out", "[image] https://example.com/a.png", "[thumbnail] https://example.com/t.png", "the team"} {
			assert.Contains(t, result, want)
		}
		for _, line := range strings.Split(result, "\n") {
			assert.True(t, strings.HasPrefix(line, "┃"), "line should carry the color bar: %q", line)
		}
	})

	t.Run("bar uses embed color", func(t *testing.T) {
		t.Parallel()
		red := goldmark.RenderEmbed(herald.Embed{Title: "T", Color: 0xFF0000}, 40, theme, nil)
		blue := goldmark.RenderEmbed(herald.Embed{Title: "T", Color: 0x0000FF}, 40, theme, nil)
		assert.NotEqual(t, red, blue)
	})

	t.Run("optional parts omitted", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.RenderEmbed(herald.Embed{Title: "T", Description: "D"}, 40, theme, nil))
		assert.NotContains(t, result, "[image]")
		assert.NotContains(t, result, "[thumbnail]")
	})
}

func TestRenderContent(t *testing.T) {
	t.Parallel()

	theme := herald.DefaultTheme()
	result := stripANSI(goldmark.RenderContent(herald.Content{
		Text:  "<@&1> heads up",
		Embed: &herald.Embed{Title: "News", Description: "details"},
	}, 60, theme, nil))

	assert.Contains(t, result, "@role:1 heads up")
	assert.Contains(t, result, "News")
	assert.Less(t, strings.Index(result, "heads up"), strings.Index(result, "News"))
}

func TestEmbedColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#5865F2"), goldmark.EmbedColor(herald.DefaultColor))
	assert.Equal(t, lipgloss.Color("#000000"), goldmark.EmbedColor(0))
}
