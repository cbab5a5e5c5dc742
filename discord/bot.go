package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot connects a Handler to the Discord gateway.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	guildID string
	logger  *slog.Logger
}

// NewBot creates a Bot. Commands are registered in guildID, or globally
// when guildID is empty.
func NewBot(session *discordgo.Session, handler *Handler, guildID string, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bot{session: session, handler: handler, guildID: guildID, logger: logger}
}

// Run opens the gateway, registers the commands, and serves interactions
// until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	remove := b.session.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		b.handler.Handle(ctx, ic.Interaction)
	})
	defer remove()

	b.session.Identify.Intents = discordgo.IntentsGuilds
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer b.session.Close()

	appID := b.session.State.User.ID
	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, b.guildID, ApplicationCommands(), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	b.logger.Info("connected", "user", b.session.State.User.Username, "commands", len(registered), "guild", b.guildID)

	<-ctx.Done()
	return nil
}
