// Package goldmark previews Discord-flavored markdown in the terminal
// using goldmark for parsing and lipgloss for styling. It is what the
// console harness shows in place of a posted message.
package goldmark

import (
	"regexp"

	"github.com/fwojciec/herald"
)

// ChannelNames resolves a channel ID to its display name.
type ChannelNames func(id string) (string, bool)

var mentionPattern = regexp.MustCompile(`<(#|@&|@!?)([A-Za-z0-9_-]+)>`)

// Render parses Discord markdown and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width; code blocks are
// not reflowed. Channel mentions are shown as #name when names resolves
// them.
func Render(source string, width int, theme herald.Theme, names ChannelNames) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(expandMentions(source, names)), width)
}

func expandMentions(source string, names ChannelNames) string {
	return mentionPattern.ReplaceAllStringFunc(source, func(m string) string {
		sub := mentionPattern.FindStringSubmatch(m)
		switch sub[1] {
		case "#":
			if names != nil {
				if name, ok := names(sub[2]); ok {
					return "#" + name
				}
			}
			return "#" + sub[2]
		case "@&":
			return "@role:" + sub[2]
		default:
			return "@" + sub[2]
		}
	})
}
