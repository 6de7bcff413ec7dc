// Package infodelivery implements the informational commands: /about,
// /avatar, and /userinfo. They read nothing but gateway data.
package infodelivery

import (
	"context"
	"fmt"
	"runtime"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/pkg/embedpkg"
	"github.com/avion-bot/avion/pkg/timestamppkg"
)

// Build metadata, set with -ldflags at release time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Handler facilitates info delivery layer logic.
type Handler struct{}

// NewHandler returns info handler.
func NewHandler() Handler {
	return Handler{}
}

// About handles the /about slash command.
func (h *Handler) About(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEmbed(ctx, s, i, &discordgo.MessageEmbed{
		Title: "About Avion",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Version", Value: Version, Inline: true},
			{Name: "Git commit", Value: fmt.Sprintf("`%s`", Commit), Inline: true},
			{Name: "Go version", Value: runtime.Version(), Inline: true},
		},
		Color: embedpkg.ColorBlue,
	})
}

// Avatar handles the /avatar user slash command.
func (h *Handler) Avatar(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := targetUser(s, i)
	if target == nil {
		respondEmbed(ctx, s, i, embedpkg.Internal())
		return
	}

	respondEmbed(ctx, s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("@%s's avatar", target.Username),
		Image: &discordgo.MessageEmbedImage{URL: target.AvatarURL("1024")},
		Color: embedpkg.ColorBlue,
	})
}

// UserInfo handles the /userinfo slash command.
func (h *Handler) UserInfo(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	l := zerolog.Ctx(ctx)

	target := targetUser(s, i)
	if target == nil {
		respondEmbed(ctx, s, i, embedpkg.Internal())
		return
	}

	createdAt, err := discordgo.SnowflakeTimestamp(target.ID)
	if err != nil {
		l.Error().Err(err).Str("user", target.ID).Msg("cannot derive creation date")
		respondEmbed(ctx, s, i, embedpkg.Internal())

		return
	}

	displayName := target.GlobalName
	if displayName == "" {
		displayName = target.Username
	}

	isBot := "No"
	if target.Bot {
		isBot = "Yes"
	}

	respondEmbed(ctx, s, i, &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("@%s", target.Username),
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("256")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Display name", Value: displayName, Inline: true},
			{Name: "Account creation date", Value: timestamppkg.Discord(createdAt, timestamppkg.LongDate), Inline: true},
			{Name: "User ID", Value: fmt.Sprintf("`%s`", target.ID), Inline: true},
			{Name: "Is bot", Value: isBot, Inline: true},
		},
		Color: embedpkg.ColorBlue,
	})
}

// targetUser resolves the optional "user" option, defaulting to the invoker.
func targetUser(s *discordgo.Session, i *discordgo.InteractionCreate) *discordgo.User {
	options := i.ApplicationCommandData().Options

	// Subcommands carry their options one level down.
	if len(options) == 1 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		options = options[0].Options
	}

	for _, opt := range options {
		if opt.Name == "user" {
			return opt.UserValue(s)
		}
	}

	if i.Member != nil {
		return i.Member.User
	}

	return i.User
}

func respondEmbed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("cannot respond to interaction")
	}
}
