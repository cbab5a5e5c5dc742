// Command herald is a Discord bot that lets staff post messages and
// announcements as the bot through slash commands and modal forms.
//
// Usage:
//
//	DISCORD_TOKEN=... ALLOWED_ROLE_IDS=123,456 herald
//	herald -console
//
// Flags:
//
//	-console   Run the terminal harness against a demo guild instead of Discord
//
// Environment:
//
//	DISCORD_TOKEN            Bot token (required unless -console)
//	ALLOWED_ROLE_IDS         Comma-separated role IDs allowed to use the commands
//	HERALD_GUILD_ID          Register commands in one guild instead of globally
//	HERALD_CHANNEL_PATTERNS  Comma-separated channel name globs, e.g. announcements*,staff-*
//	HERALD_AUDIT_LOG         Path of a JSON-lines audit trail
//	HERALD_SESSION_TTL       Pending session lifetime (default 300s)
//	HERALD_SWEEP_INTERVAL    Expired session sweep interval (default 300s)
//	HERALD_LOG_LEVEL         debug, info, warn, or error (default info)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/herald"
	"github.com/fwojciec/herald/console"
	"github.com/fwojciec/herald/discord"
	"github.com/fwojciec/herald/glob"
	heraldjson "github.com/fwojciec/herald/json"
	"golang.org/x/sync/errgroup"
)

// interactionTimeout bounds the platform calls made for one interaction.
// Submissions are acknowledged before those calls start, so the budget is
// not tied to Discord's three second response window.
const interactionTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "herald: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	consoleMode := flag.Bool("console", false, "Run the terminal harness against a demo guild")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(env.ToMap(os.Environ()), *consoleMode)
	if err != nil {
		return err
	}

	// The console owns the terminal, so its logs are dropped.
	var logOut io.Writer = os.Stderr
	if *consoleMode {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	clk := clock.New()
	sessions := herald.NewSessions(clk)
	allow := herald.NewAllowList(cfg.AllowedRoleIDs, logger)
	if allow.Len() == 0 {
		logger.Warn("ALLOWED_ROLE_IDS is empty, every command will be denied")
	}

	opts := []herald.RelayOption{herald.WithLogger(logger)}
	if len(cfg.ChannelPatterns) > 0 {
		filter, err := glob.NewFilter(cfg.ChannelPatterns)
		if err != nil {
			return err
		}
		opts = append(opts, herald.WithChannelFilter(filter))
	}
	if cfg.AuditLog != "" {
		audit, err := heraldjson.OpenAuditLog(cfg.AuditLog)
		if err != nil {
			return fmt.Errorf("open audit log: %w", err)
		}
		defer audit.Close()
		opts = append(opts, herald.WithAuditor(audit))
	}

	reaper := herald.NewReaper(sessions,
		herald.WithTTL(cfg.SessionTTL),
		herald.WithInterval(cfg.SweepInterval),
		herald.WithReaperLogger(logger),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := reaper.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if *consoleMode {
		guild := console.DemoGuild(clk.Now)
		relay := herald.NewRelay(guild, sessions, allow, opts...)
		actor := herald.Actor{ID: "operator", Name: "operator", Roles: cfg.AllowedRoleIDs[:1]}
		g.Go(func() error {
			defer cancel()
			if err := console.Run(ctx, console.New(relay, guild, actor, herald.DefaultTheme())); err != nil {
				return fmt.Errorf("console: %w", err)
			}
			return nil
		})
		return g.Wait()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	platform := discord.NewPlatform(session, discord.SessionBotID(session))
	relay := herald.NewRelay(platform, sessions, allow, opts...)
	handler := discord.NewHandler(relay, session, logger, interactionTimeout)
	bot := discord.NewBot(session, handler, cfg.GuildID, logger)
	g.Go(func() error {
		return bot.Run(ctx)
	})
	return g.Wait()
}
