// Package bot owns the gateway session and routes interactions to handlers.
package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/internal/middleware"
	"github.com/avion-bot/avion/pkg/configpkg"
	"github.com/avion-bot/avion/pkg/metricspkg"
)

// HandlerFunc is a slash command handler. The context carries an
// interaction-scoped logger and is cancelled on shutdown.
type HandlerFunc func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate)

// Handlers groups the delivery handlers routed by the bot.
type Handlers struct {
	Commands  map[string]HandlerFunc
	Component HandlerFunc
}

// Bot wraps one gateway session with its command routing.
type Bot struct {
	session  *discordgo.Session
	config   configpkg.Config
	logger   zerolog.Logger
	handlers Handlers

	ctx context.Context
}

// New builds the bot and its gateway session. The session is not opened yet.
func New(config configpkg.Config, logger zerolog.Logger, handlers Handlers) (*Bot, error) {
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildIntegrations

	b := &Bot{
		session:  session,
		config:   config,
		logger:   logger,
		handlers: handlers,
		ctx:      context.Background(),
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)

	return b, nil
}

// Run opens the session, registers the command schema, and blocks until ctx
// is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway session: %w", err)
	}

	defer func() {
		if err := b.session.Close(); err != nil {
			b.logger.Error().Err(err).Msg("cannot close gateway session")
		}
	}()

	if err := b.registerCommands(); err != nil {
		return err
	}

	<-ctx.Done()

	return nil
}

func (b *Bot) registerCommands() error {
	appID := b.session.State.User.ID

	if guildID := b.config.TestingGuildID; guildID != "" {
		b.logger.Warn().Str("testing_guild_id", guildID).Msg("registering commands in the test guild")

		_, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, commands)
		if err != nil {
			return fmt.Errorf("register guild commands: %w", err)
		}

		return nil
	}

	b.logger.Debug().Msg("registering slash commands globally")

	_, err := b.session.ApplicationCommandBulkOverwrite(appID, "", commands)
	if err != nil {
		return fmt.Errorf("register global commands: %w", err)
	}

	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info().
		Str("username", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("ready")

	if err := s.UpdateWatchStatus(0, "over your server"); err != nil {
		b.logger.Error().Err(err).Msg("cannot update presence")
	}
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name

		handler, ok := b.handlers.Commands[name]
		if !ok {
			b.logger.Warn().Str("command", name).Msg("unknown command")
			return
		}

		metricspkg.CommandInvocations.WithLabelValues(name).Inc()

		ctx := middleware.WithInteraction(b.ctx, b.logger, i.ID, name)
		handler(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		if b.handlers.Component == nil {
			return
		}

		ctx := middleware.WithInteraction(b.ctx, b.logger, i.ID, "component")
		b.handlers.Component(ctx, s, i)
	default:
		// Other interaction kinds (autocomplete, modals) are not used.
	}
}
