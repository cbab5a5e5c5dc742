package goldmark

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/herald"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// subtextPrefix starts a line Discord shows in small muted type.
const subtextPrefix = "-# "

type palette struct {
	bold, italic, strike lipgloss.Style
	code, spoiler        lipgloss.Style
	heading, subtext     lipgloss.Style
	link, dim            lipgloss.Style
}

func newPalette(theme herald.Theme) palette {
	muted := ansiColor(theme.Muted)
	return palette{
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		strike:  lipgloss.NewStyle().Strikethrough(true),
		code:    lipgloss.NewStyle().Reverse(true),
		spoiler: lipgloss.NewStyle().Foreground(muted).Background(muted),
		heading: lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		subtext: lipgloss.NewStyle().Foreground(muted).Faint(true),
		link:    lipgloss.NewStyle().Underline(true),
		dim:     lipgloss.NewStyle().Foreground(muted).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// discordMarkdown parses the subset of markdown Discord renders in message
// text. Tables are left off because Discord shows them as typed.
func discordMarkdown() parser.Parser {
	return goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithParserOptions(parser.WithInlineParsers(util.Prioritized(spoilerParser{}, 500))),
	).Parser()
}

type ansiRenderer struct {
	parser parser.Parser
	style  palette
	source []byte
}

func newRenderer(theme herald.Theme) *ansiRenderer {
	return &ansiRenderer{parser: discordMarkdown(), style: newPalette(theme)}
}

func (r *ansiRenderer) render(source []byte, width int) string {
	r.source = source
	doc := r.parser.Parse(text.NewReader(source))
	return strings.Join(r.children(doc, width), "\n\n")
}

// children renders each block under n. Discord separates blocks with one
// blank line.
func (r *ansiRenderer) children(n ast.Node, width int) []string {
	var out []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := r.block(c, width); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r *ansiRenderer) block(node ast.Node, width int) string {
	switch n := node.(type) {
	case *ast.Paragraph:
		return r.paragraph(n, width)
	case *ast.Heading:
		// Only three levels are rendered; deeper ones stay literal.
		if n.Level > 3 {
			return wrap(strings.Repeat("#", n.Level)+" "+r.inline(n), width)
		}
		return wrap(r.style.heading.Render(r.inline(n)), width)
	case *ast.FencedCodeBlock:
		code := r.code(n.Lines())
		if lang := string(n.Language(r.source)); lang != "" {
			return r.style.dim.Render(lang) + "\n" + code
		}
		return code
	case *ast.CodeBlock:
		return r.code(n.Lines())
	case *ast.Blockquote:
		return r.quote(n, width)
	case *ast.List:
		return strings.Join(r.list(n, width, 0), "\n")
	case *ast.ThematicBreak:
		return "---"
	case *ast.HTMLBlock:
		return strings.TrimRight(r.literal(n.Lines()), "\n")
	default:
		return strings.Join(r.children(n, width), "\n\n")
	}
}

// paragraph wraps each line on its own so subtext lines can be dimmed.
func (r *ansiRenderer) paragraph(n ast.Node, width int) string {
	lines := strings.Split(r.inline(n), "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, subtextPrefix); ok {
			line = r.style.subtext.Render(rest)
		}
		lines[i] = wrap(line, width)
	}
	return strings.Join(lines, "\n")
}

func (r *ansiRenderer) quote(n *ast.Blockquote, width int) string {
	bar := r.style.dim.Render("▌") + " "
	body := strings.Join(r.children(n, width-2), "\n\n")
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = bar + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (r *ansiRenderer) code(lines *text.Segments) string {
	gutter := r.style.dim.Render("│") + " "
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, gutter+strings.TrimRight(string(seg.Value(r.source)), "\n"))
	}
	return strings.Join(out, "\n")
}

func (r *ansiRenderer) literal(lines *text.Segments) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.source))
	}
	return b.String()
}

// list returns the lines of l. Nested lists indent two columns per level
// and wrapped text hangs under the first character after the marker.
func (r *ansiRenderer) list(l *ast.List, width, depth int) []string {
	var out []string
	num := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if l.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		prefix := strings.Repeat("  ", depth) + marker
		var pending []string
		flush := func() {
			if len(pending) == 0 {
				return
			}
			out = append(out, hang(prefix, strings.Join(pending, "\n"), width)...)
			pending = nil
			prefix = strings.Repeat(" ", lipgloss.Width(prefix))
		}
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				flush()
				out = append(out, r.list(c, width, depth+1)...)
			case *ast.Paragraph, *ast.TextBlock:
				pending = append(pending, r.inline(c))
			default:
				pending = append(pending, r.block(c, width))
			}
		}
		flush()
	}
	return out
}

func hang(prefix, content string, width int) []string {
	w := lipgloss.Width(prefix)
	pad := strings.Repeat(" ", w)
	lines := strings.Split(wrap(content, max(width-w, 10)), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (r *ansiRenderer) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(r.span(c))
	}
	return b.String()
}

func (r *ansiRenderer) span(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(r.source))
		// Unlike CommonMark, Discord keeps single newlines.
		if n.SoftLineBreak() || n.HardLineBreak() {
			s += "\n"
		}
		return s
	case *ast.String:
		return string(n.Value)
	case *ast.Emphasis:
		if n.Level == 1 {
			return r.style.italic.Render(r.inline(n))
		}
		return r.style.bold.Render(r.inline(n))
	case *extast.Strikethrough:
		return r.style.strike.Render(r.inline(n))
	case *spoiler:
		return r.style.spoiler.Render(r.inline(n))
	case *ast.CodeSpan:
		return r.style.code.Render(r.inline(n))
	case *ast.Link:
		return r.style.link.Render(r.inline(n)) + " " + r.style.dim.Render("("+string(n.Destination)+")")
	case *ast.AutoLink:
		return r.style.link.Render(string(n.URL(r.source)))
	case *ast.Image:
		// Message text never inlines images.
		return "![" + r.inline(n) + "](" + string(n.Destination) + ")"
	case *ast.RawHTML:
		return r.literal(n.Segments)
	default:
		return r.inline(n)
	}
}
