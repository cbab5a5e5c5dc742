package console_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/herald"
	"github.com/fwojciec/herald/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

func TestGuild(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lookup by name, hash name, and ID", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)

		for _, ref := range []string{"general", "#general", "#General", "100"} {
			ch, ok := g.Lookup(ref)
			require.True(t, ok, ref)
			assert.Equal(t, "100", ch.ID, ref)
		}
		_, ok := g.Lookup("#nope")
		assert.False(t, ok)
	})

	t.Run("channels sorted by name", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)

		var names []string
		for _, ch := range g.Channels() {
			names = append(names, ch.Name)
		}
		assert.Equal(t, []string{"announcements", "archive", "general", "lounge", "mod-log", "rules"}, names)
	})

	t.Run("missing channel", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)
		g.RemoveChannel("100")

		_, err := g.Channel(ctx, "100")
		assert.ErrorIs(t, err, herald.ErrChannelNotFound)
	})

	t.Run("permissions", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)

		rules, _ := g.Lookup("rules")
		perms, err := g.Permissions(ctx, rules)
		require.NoError(t, err)
		assert.Equal(t, herald.Permissions{View: true}, perms)

		archive, _ := g.Lookup("archive")
		_, err = g.Permissions(ctx, archive)
		assert.ErrorIs(t, err, herald.ErrPermissionsUnknown)
	})

	t.Run("send records posts", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)
		general, _ := g.Lookup("general")

		require.NoError(t, g.Send(ctx, general, herald.Content{Text: "hi"}))
		posts := g.Posts()
		require.Len(t, posts, 1)
		assert.Equal(t, console.Post{Channel: general, Content: herald.Content{Text: "hi"}, At: fixedNow()}, posts[0])

		posts[0].Content.Text = "changed"
		assert.Equal(t, "hi", g.Posts()[0].Content.Text)
	})

	t.Run("send without permission fails", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)
		rules, _ := g.Lookup("rules")

		assert.Error(t, g.Send(ctx, rules, herald.Content{Text: "hi"}))
		assert.Empty(t, g.Posts())
	})

	t.Run("channel name", func(t *testing.T) {
		t.Parallel()
		g := console.DemoGuild(fixedNow)

		name, ok := g.ChannelName("101")
		assert.True(t, ok)
		assert.Equal(t, "announcements", name)
	})
}
