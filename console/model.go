package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/herald"
	"github.com/fwojciec/herald/goldmark"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

const helpText = `Commands:
  /say #channel                      open the message form
  /announce #channel [preamble=...] [thumbnail=...]
                                     open the announcement form
  /channels                          list the demo guild's channels
  /roles [id ...]                    show or replace your roles
  /quit                              leave
In a form: Tab/Shift+Tab move, Enter advances, Ctrl+S submits, Esc closes.`

type entryKind int

const (
	entryOperator entryKind = iota
	entryInfo
	entryNotice
	entryError
	entryPost
)

type entry struct {
	kind entryKind
	text string
	post Post
}

// Model is the Bubble Tea model for the console harness.
type Model struct {
	// Input is the command line. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript. Exported for test access.
	Viewport viewport.Model

	relay  *herald.Relay
	guild  *Guild
	actor  herald.Actor
	theme  herald.Theme
	styles Styles

	entries []entry
	form    *formState
	seen    int // posts already shown
	busy    bool
	width   int
	height  int
	ready   bool
}

// New creates a Model acting as actor against guild.
func New(relay *herald.Relay, guild *Guild, actor herald.Actor, theme herald.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "/say #general"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return Model{
		Input:   ti,
		relay:   relay,
		guild:   guild,
		actor:   actor,
		theme:   theme,
		styles:  NewStyles(theme),
		entries: []entry{{kind: entryInfo, text: "Type /help for commands."}},
	}
}

// Actor returns the actor the console acts as.
func (m Model) Actor() herald.Actor { return m.actor }

// FormOpen reports whether a form is shown.
func (m Model) FormOpen() bool { return m.form != nil }

// FocusedField returns the ID of the focused form field, or "" when no
// form is open.
func (m Model) FocusedField() string {
	if m.form == nil {
		return ""
	}
	if f := m.form.focused(); f != nil {
		return f.field.ID
	}
	return ""
}

// Busy reports whether a relay call is in flight.
func (m Model) Busy() bool { return m.busy }

// Transcript returns the transcript as plain text, without styling.
func (m Model) Transcript() string {
	var b strings.Builder
	for _, e := range m.entries {
		switch e.kind {
		case entryPost:
			fmt.Fprintf(&b, "#%s: %s\n", e.post.Channel.Name, plainContent(e.post.Content))
		default:
			b.WriteString(e.text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func plainContent(c herald.Content) string {
	parts := []string{}
	if c.Text != "" {
		parts = append(parts, c.Text)
	}
	if e := c.Embed; e != nil {
		parts = append(parts, fmt.Sprintf("[embed %s: %s]", e.Title, e.Description))
	}
	return strings.Join(parts, " ")
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.Viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.Input.Width = msg.Width - 2
		if m.form != nil {
			m.form.setWidth(msg.Width)
		}
		m = m.layout()
		return m.refresh(), nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)

	case RelayDoneMsg:
		return m.handleDone(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	if m.form != nil {
		if f := m.form.focused(); f != nil {
			cmds = append(cmds, f.update(msg))
		}
	} else {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.form != nil {
		b.WriteString(m.form.view(m.styles))
	} else {
		b.WriteString(m.Input.View())
	}
	return b.String()
}

func (m Model) layout() Model {
	if !m.ready {
		return m
	}
	bottom := 1
	if m.form != nil {
		bottom = m.form.height()
	}
	m.Viewport.Width = m.width
	m.Viewport.Height = max(m.height-bottom-2, 1)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		m.Input.SetValue("")
		return m.handleLine(text)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		// Dismissing a form leaves the session to expire on its own.
		m = m.closeForm()
		m = m.appendEntry(entry{kind: entryInfo, text: "Form closed."})
		return m, m.Input.Focus()
	case tea.KeyTab:
		return m, m.form.move(1)
	case tea.KeyShiftTab:
		return m, m.form.move(-1)
	case tea.KeyCtrlS:
		return m.submitForm()
	case tea.KeyEnter:
		if f := m.form.focused(); f != nil && !f.paragraph() {
			if m.form.last() {
				return m.submitForm()
			}
			return m, m.form.move(1)
		}
	}
	if f := m.form.focused(); f != nil {
		return m, f.update(msg)
	}
	return m, nil
}

func (m Model) handleLine(text string) (tea.Model, tea.Cmd) {
	m = m.appendEntry(entry{kind: entryOperator, text: "> " + text})
	l, ok := parseLine(text)
	if !ok {
		return m.appendEntry(entry{kind: entryError, text: "Commands start with /. Try /help."}), nil
	}

	switch l.command {
	case "help":
		return m.appendEntry(entry{kind: entryInfo, text: helpText}), nil
	case "channels":
		return m.appendEntry(entry{kind: entryInfo, text: m.channelList()}), nil
	case "roles":
		if len(l.args) > 0 {
			var roles []string
			for _, a := range l.args {
				roles = append(roles, herald.ParseRoleIDs(a)...)
			}
			m.actor.Roles = roles
		}
		return m.appendEntry(entry{kind: entryInfo, text: "Roles: " + strings.Join(m.actor.Roles, ", ")}), nil
	case "quit", "exit":
		return m, tea.Quit
	}

	channelID := strings.TrimPrefix(l.target, "#")
	if ch, ok := m.guild.Lookup(l.target); ok {
		channelID = ch.ID
	}
	m.busy = true
	return m, handle(m.relay, herald.CommandInvocation{
		Command:   l.command,
		Actor:     m.actor,
		GuildID:   m.guild.ID(),
		ChannelID: channelID,
		Options:   l.options,
	})
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	in := herald.FormSubmission{
		FormID:  m.form.form.ID,
		Actor:   m.actor,
		GuildID: m.guild.ID(),
		Fields:  m.form.values(),
	}
	m = m.closeForm()
	m.busy = true
	return m, handle(m.relay, in)
}

func (m Model) handleDone(msg RelayDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	posts := m.guild.Posts()
	for _, p := range posts[min(m.seen, len(posts)):] {
		m.entries = append(m.entries, entry{kind: entryPost, post: p})
	}
	m.seen = len(posts)
	for _, r := range msg.Replies {
		m.entries = append(m.entries, entry{kind: entryNotice, text: r})
	}
	if msg.Err != nil {
		m.entries = append(m.entries, entry{kind: entryError, text: msg.Err.Error()})
	}
	if msg.Form != nil {
		m.form = newFormState(*msg.Form, m.width)
		m.Input.Blur()
		cmd := m.form.fields[0].focus()
		m = m.layout()
		return m.refresh(), cmd
	}
	return m.refresh(), m.Input.Focus()
}

func (m Model) closeForm() Model {
	m.form = nil
	return m.layout().refresh()
}

func (m Model) appendEntry(e entry) Model {
	m.entries = append(m.entries, e)
	return m.refresh()
}

func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderTranscript())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderTranscript() string {
	width := max(m.Viewport.Width, 20)
	names := goldmark.ChannelNames(m.guild.ChannelName)
	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		switch e.kind {
		case entryOperator:
			parts = append(parts, m.styles.Operator.Render(e.text))
		case entryInfo:
			parts = append(parts, m.styles.Muted.Render(e.text))
		case entryError:
			parts = append(parts, m.styles.Error.Render("error: "+e.text))
		case entryNotice:
			header := m.styles.Notice.Render("herald") + " " + m.styles.Muted.Render("only you can see this")
			parts = append(parts, header+"\n"+goldmark.Render(e.text, width, m.theme, names))
		case entryPost:
			header := m.styles.Channel.Render("#"+e.post.Channel.Name) + " " + m.styles.Muted.Render(e.post.At.Format("15:04"))
			parts = append(parts, header+"\n"+goldmark.RenderContent(e.post.Content, width, m.theme, names))
		}
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) channelList() string {
	var b strings.Builder
	for i, ch := range m.guild.Channels() {
		if i > 0 {
			b.WriteString("\n")
		}
		kind := "text"
		if !ch.Text {
			kind = "other"
		}
		var perms []string
		switch {
		case ch.PermsUnknown:
			perms = append(perms, "perms unknown")
		default:
			if ch.Perms.View {
				perms = append(perms, "view")
			}
			if ch.Perms.Send {
				perms = append(perms, "send")
			}
		}
		if len(perms) == 0 {
			perms = append(perms, "none")
		}
		b.WriteString(runewidth.FillRight("#"+ch.Name, 16))
		b.WriteString(runewidth.FillRight(kind, 7))
		b.WriteString(strings.Join(perms, ", "))
	}
	return b.String()
}

func (m Model) statusLine() string {
	var s string
	switch {
	case m.busy:
		s = "Working..."
	case m.form != nil:
		s = "Tab to move, Ctrl+S to submit, Esc to close"
	default:
		name := m.actor.Name
		if name == "" {
			name = m.actor.ID
		}
		s = fmt.Sprintf("acting as %s [%s] · /help · Ctrl+C to quit", name, strings.Join(m.actor.Roles, ","))
	}
	if m.width > 0 {
		s = runewidth.Truncate(s, m.width, "…")
	}
	return m.styles.Muted.Render(s)
}
