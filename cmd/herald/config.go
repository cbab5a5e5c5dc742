package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/herald"
)

// consoleRole is granted to the console operator when no roles are
// configured.
const consoleRole = "staff"

type config struct {
	Token           string        `env:"DISCORD_TOKEN"`
	AllowedRoleIDs  []string      `env:"ALLOWED_ROLE_IDS"        envSeparator:","`
	GuildID         string        `env:"HERALD_GUILD_ID"`
	ChannelPatterns []string      `env:"HERALD_CHANNEL_PATTERNS" envSeparator:","`
	AuditLog        string        `env:"HERALD_AUDIT_LOG"`
	SessionTTL      time.Duration `env:"HERALD_SESSION_TTL"      envDefault:"300s"`
	SweepInterval   time.Duration `env:"HERALD_SWEEP_INTERVAL"   envDefault:"300s"`
	LogLevel        slog.Level    `env:"HERALD_LOG_LEVEL"        envDefault:"info"`
}

// loadConfig reads configuration from environ. The token is only required
// when connecting to Discord.
func loadConfig(environ map[string]string, console bool) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.AllowedRoleIDs = herald.NormalizeRoleIDs(cfg.AllowedRoleIDs)
	cfg.ChannelPatterns = trimList(cfg.ChannelPatterns)

	if cfg.SessionTTL <= 0 {
		return config{}, fmt.Errorf("HERALD_SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.SweepInterval <= 0 {
		return config{}, fmt.Errorf("HERALD_SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	if console {
		if len(cfg.AllowedRoleIDs) == 0 {
			cfg.AllowedRoleIDs = []string{consoleRole}
		}
		return cfg, nil
	}
	if cfg.Token == "" {
		return config{}, errors.New("DISCORD_TOKEN is required")
	}
	return cfg, nil
}

func trimList(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
