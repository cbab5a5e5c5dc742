package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/fwojciec/herald"
)

var _ herald.Platform = (*Platform)(nil)

// RESTClient is the subset of *discordgo.Session the Platform calls.
type RESTClient interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Platform implements herald.Platform over Discord's REST API. Every call
// goes to Discord; nothing is remembered between interactions.
type Platform struct {
	client RESTClient
	botID  func() string
}

// NewPlatform creates a Platform. botID returns the bot's own user ID; it
// is called per permission check because the ID is only known once the
// gateway session is ready.
func NewPlatform(client RESTClient, botID func() string) *Platform {
	return &Platform{client: client, botID: botID}
}

// SessionBotID returns a botID function reading the ready state of s.
func SessionBotID(s *discordgo.Session) func() string {
	return func() string {
		if s.State == nil || s.State.User == nil {
			return ""
		}
		return s.State.User.ID
	}
}

// Channel fetches a channel. Only guild text and announcement channels are
// reported as text-capable.
func (p *Platform) Channel(ctx context.Context, id string) (herald.Channel, error) {
	ch, err := p.client.Channel(id, discordgo.WithContext(ctx))
	if err != nil {
		var rerr *discordgo.RESTError
		if errors.As(err, &rerr) && rerr.Response != nil && rerr.Response.StatusCode == http.StatusNotFound {
			return herald.Channel{}, fmt.Errorf("channel %s: %w", id, herald.ErrChannelNotFound)
		}
		return herald.Channel{}, fmt.Errorf("fetch channel %s: %w", id, err)
	}
	return herald.Channel{
		ID:      ch.ID,
		Name:    ch.Name,
		GuildID: ch.GuildID,
		Text:    ch.Type == discordgo.ChannelTypeGuildText || ch.Type == discordgo.ChannelTypeGuildNews,
	}, nil
}

// Permissions computes the bot's permissions in ch, including role and
// channel overwrites.
func (p *Platform) Permissions(ctx context.Context, ch herald.Channel) (herald.Permissions, error) {
	id := p.botID()
	if id == "" {
		return herald.Permissions{}, fmt.Errorf("bot user not ready: %w", herald.ErrPermissionsUnknown)
	}
	perms, err := p.client.UserChannelPermissions(id, ch.ID, discordgo.WithContext(ctx))
	if err != nil {
		return herald.Permissions{}, fmt.Errorf("%w: %w", herald.ErrPermissionsUnknown, err)
	}
	return herald.Permissions{
		View: perms&discordgo.PermissionViewChannel != 0,
		Send: perms&discordgo.PermissionSendMessages != 0,
	}, nil
}

// Send posts c to ch.
func (p *Platform) Send(ctx context.Context, ch herald.Channel, c herald.Content) error {
	if _, err := p.client.ChannelMessageSendComplex(ch.ID, MessageSend(c), discordgo.WithContext(ctx)); err != nil {
		return err
	}
	return nil
}
