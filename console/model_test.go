package console_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/herald"
	"github.com/fwojciec/herald/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staff = herald.Actor{ID: "op", Name: "operator", Roles: []string{"staff"}}

func newModel(t *testing.T, actor herald.Actor) (console.Model, *console.Guild) {
	t.Helper()
	guild := console.DemoGuild(fixedNow)
	relay := herald.NewRelay(guild, herald.NewSessions(clock.NewMock()), herald.NewAllowList([]string{"staff"}, nil))
	m := console.New(relay, guild, actor, herald.DefaultTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, guild
}

func update(t *testing.T, m console.Model, msg tea.Msg) (console.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(console.Model)
	require.True(t, ok)
	return model, cmd
}

// enter types a line and presses Enter.
func enter(t *testing.T, m console.Model, line string) (console.Model, tea.Cmd) {
	t.Helper()
	m.Input.SetValue(line)
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// settle runs a relay command and feeds its result back.
func settle(t *testing.T, m console.Model, cmd tea.Cmd) console.Model {
	t.Helper()
	require.NotNil(t, cmd)
	done, ok := cmd().(console.RelayDoneMsg)
	require.True(t, ok)
	m, _ = update(t, m, done)
	return m
}

func typeText(t *testing.T, m console.Model, s string) console.Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestModel(t *testing.T) {
	t.Parallel()

	t.Run("say posts to the channel", func(t *testing.T) {
		t.Parallel()
		m, guild := newModel(t, staff)

		m, cmd := enter(t, m, "/say #general")
		assert.True(t, m.Busy())
		m = settle(t, m, cmd)
		require.True(t, m.FormOpen())
		assert.Equal(t, herald.FieldMessage, m.FocusedField())

		m = typeText(t, m, "hello there")
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		assert.False(t, m.FormOpen())
		m = settle(t, m, cmd)

		posts := guild.Posts()
		require.Len(t, posts, 1)
		assert.Equal(t, "hello there", posts[0].Content.Text)
		assert.Contains(t, m.Transcript(), "#general: hello there")
		assert.Contains(t, m.Transcript(), "Message sent to <#100>.")
		assert.False(t, m.Busy())
	})

	t.Run("announce walks the form with enter", func(t *testing.T) {
		t.Parallel()
		m, guild := newModel(t, staff)

		m, cmd := enter(t, m, "/announce #announcements preamble=heads up")
		m = settle(t, m, cmd)
		require.True(t, m.FormOpen())
		assert.Equal(t, herald.FieldTitle, m.FocusedField())

		m = typeText(t, m, "Release")
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, herald.FieldDescription, m.FocusedField())
		m = typeText(t, m, "v2 is out")
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, herald.FieldColor, m.FocusedField())
		m = typeText(t, m, "gold")
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		m = settle(t, m, cmd)

		posts := guild.Posts()
		require.Len(t, posts, 1)
		c := posts[0].Content
		assert.Equal(t, "heads up", c.Text)
		require.NotNil(t, c.Embed)
		assert.Equal(t, "Release", c.Embed.Title)
		assert.Equal(t, "v2 is out", c.Embed.Description)
		assert.Equal(t, 0xFFD700, c.Embed.Color)
		assert.Contains(t, m.Transcript(), "Announcement sent to <#101>.")
	})

	t.Run("shift tab wraps to the last field", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, staff)

		m, cmd := enter(t, m, "/announce #general")
		m = settle(t, m, cmd)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, herald.FieldFooter, m.FocusedField())
	})

	t.Run("actor without role is denied", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, herald.Actor{ID: "guest"})

		m, cmd := enter(t, m, "/say #general")
		m = settle(t, m, cmd)
		assert.False(t, m.FormOpen())
		assert.Contains(t, m.Transcript(), herald.NoticeDenied)
	})

	t.Run("read-only channel reports missing send", func(t *testing.T) {
		t.Parallel()
		m, guild := newModel(t, staff)

		m, cmd := enter(t, m, "/say #rules")
		m = settle(t, m, cmd)
		m = typeText(t, m, "hi")
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		m = settle(t, m, cmd)

		assert.Empty(t, guild.Posts())
		assert.Contains(t, m.Transcript(), "**Send Messages**")
	})

	t.Run("non-text channel is an invalid target", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, staff)

		m, cmd := enter(t, m, "/say #lounge")
		m = settle(t, m, cmd)
		m = typeText(t, m, "hi")
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		m = settle(t, m, cmd)

		assert.Contains(t, m.Transcript(), herald.NoticeInvalidTarget)
	})

	t.Run("escape closes the form", func(t *testing.T) {
		t.Parallel()
		m, guild := newModel(t, staff)

		m, cmd := enter(t, m, "/say #general")
		m = settle(t, m, cmd)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.False(t, m.FormOpen())
		assert.Empty(t, guild.Posts())
		assert.Contains(t, m.Transcript(), "Form closed.")
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, staff)

		m, cmd := enter(t, m, "/shout #general")
		m = settle(t, m, cmd)
		assert.Contains(t, m.Transcript(), "unknown command")
	})

	t.Run("text without slash", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, staff)

		m, cmd := enter(t, m, "hello")
		assert.Nil(t, cmd)
		assert.Contains(t, m.Transcript(), "Commands start with /.")
	})

	t.Run("roles replaces the actor's roles", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, staff)

		m, _ = enter(t, m, "/roles mod, admin")
		assert.Equal(t, []string{"mod", "admin"}, m.Actor().Roles)
		assert.Contains(t, m.Transcript(), "Roles: mod, admin")
	})

	t.Run("channels lists permissions", func(t *testing.T) {
		t.Parallel()
		m, _ := newModel(t, staff)

		m, _ = enter(t, m, "/channels")
		out := m.Transcript()
		assert.Contains(t, out, "#rules")
		assert.Contains(t, out, "perms unknown")
		assert.Contains(t, out, "view, send")
	})

	t.Run("view before window size", func(t *testing.T) {
		t.Parallel()
		guild := console.DemoGuild(fixedNow)
		relay := herald.NewRelay(guild, herald.NewSessions(clock.NewMock()), herald.NewAllowList(nil, nil))
		m := console.New(relay, guild, staff, herald.DefaultTheme())
		assert.Equal(t, "Initializing...", m.View())
	})
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, staff)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 40))

	tm.Type("/help")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Commands:")) &&
			bytes.Contains(out, []byte("Ctrl+C to quit"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}
