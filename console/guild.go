package console

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/herald"
)

var _ herald.Platform = (*Guild)(nil)

// GuildChannel is a channel of the in-memory guild together with the
// bot's permissions there.
type GuildChannel struct {
	herald.Channel
	Perms herald.Permissions
	// PermsUnknown makes permission lookups fail, as when the bot's member
	// record is missing.
	PermsUnknown bool
}

// Post is a message the bot dispatched.
type Post struct {
	Channel herald.Channel
	Content herald.Content
	At      time.Time
}

// Guild is an in-memory herald.Platform. It is safe for concurrent use.
type Guild struct {
	id  string
	now func() time.Time

	mu       sync.Mutex
	channels map[string]GuildChannel
	posts    []Post
}

// NewGuild creates an empty guild. now stamps posts.
func NewGuild(id string, now func() time.Time) *Guild {
	if now == nil {
		now = time.Now
	}
	return &Guild{id: id, now: now, channels: make(map[string]GuildChannel)}
}

// DemoGuild returns a guild whose channels cover every outcome a relay can
// report.
func DemoGuild(now func() time.Time) *Guild {
	g := NewGuild("demo", now)
	both := herald.Permissions{View: true, Send: true}
	g.AddChannel("100", "general", true, both)
	g.AddChannel("101", "announcements", true, both)
	g.AddChannel("102", "rules", true, herald.Permissions{View: true})
	g.AddChannel("103", "mod-log", true, herald.Permissions{})
	g.AddChannel("104", "lounge", false, both)
	g.AddChannel("105", "archive", true, both)
	g.SetPermsUnknown("105", true)
	return g
}

// ID returns the guild ID.
func (g *Guild) ID() string { return g.id }

// AddChannel adds or replaces a channel.
func (g *Guild) AddChannel(id, name string, text bool, perms herald.Permissions) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels[id] = GuildChannel{
		Channel: herald.Channel{ID: id, Name: name, GuildID: g.id, Text: text},
		Perms:   perms,
	}
}

// RemoveChannel deletes a channel, as if an admin removed it mid-session.
func (g *Guild) RemoveChannel(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.channels, id)
}

// SetPermsUnknown toggles failing permission lookups for a channel.
func (g *Guild) SetPermsUnknown(id string, unknown bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ch, ok := g.channels[id]; ok {
		ch.PermsUnknown = unknown
		g.channels[id] = ch
	}
}

// Channels returns all channels sorted by name.
func (g *Guild) Channels() []GuildChannel {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]GuildChannel, 0, len(g.channels))
	for _, ch := range g.channels {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a channel by ID or by name, with or without a leading '#'.
func (g *Guild) Lookup(ref string) (herald.Channel, bool) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	g.mu.Lock()
	defer g.mu.Unlock()
	if ch, ok := g.channels[ref]; ok {
		return ch.Channel, true
	}
	for _, ch := range g.channels {
		if strings.EqualFold(ch.Name, ref) {
			return ch.Channel, true
		}
	}
	return herald.Channel{}, false
}

// ChannelName resolves a channel ID to its name.
func (g *Guild) ChannelName(id string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.channels[id]
	return ch.Name, ok
}

// Posts returns the posts dispatched so far, oldest first.
func (g *Guild) Posts() []Post {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Post, len(g.posts))
	copy(out, g.posts)
	return out
}

// Channel implements herald.Platform.
func (g *Guild) Channel(_ context.Context, id string) (herald.Channel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.channels[id]
	if !ok {
		return herald.Channel{}, fmt.Errorf("channel %s: %w", id, herald.ErrChannelNotFound)
	}
	return ch.Channel, nil
}

// Permissions implements herald.Platform.
func (g *Guild) Permissions(_ context.Context, ch herald.Channel) (herald.Permissions, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	gc, ok := g.channels[ch.ID]
	if !ok || gc.PermsUnknown {
		return herald.Permissions{}, fmt.Errorf("channel %s: %w", ch.ID, herald.ErrPermissionsUnknown)
	}
	return gc.Perms, nil
}

// Send implements herald.Platform.
func (g *Guild) Send(_ context.Context, ch herald.Channel, c herald.Content) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	gc, ok := g.channels[ch.ID]
	switch {
	case !ok:
		return fmt.Errorf("channel %s: %w", ch.ID, herald.ErrChannelNotFound)
	case !gc.Perms.Send:
		return fmt.Errorf("missing access to #%s", gc.Name)
	}
	g.posts = append(g.posts, Post{Channel: gc.Channel, Content: c, At: g.now()})
	return nil
}
