// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/internal/domain"
	"github.com/avion-bot/avion/pkg/embedpkg"
)

// Service provides account service layer interface needed by the delivery layer.
type Service interface {
	Get(ctx context.Context, userID, guildID string) (domain.Account, error)
	Register(ctx context.Context, userID, guildID string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

// Balance handles the /balance slash command. Without a user option it shows
// the invoking user's balances.
func (h *Handler) Balance(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	l := zerolog.Ctx(ctx)

	target := interactionUser(i)

	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		respondEmbed(s, i, embedpkg.Internal())
		return
	}

	account, err := h.service.Get(ctx, target.ID, i.GuildID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondEmbed(s, i, embedpkg.UserNotRegistered())
			return
		}

		l.Error().Err(err).Msg("cannot get balances")
		respondEmbed(s, i, embedpkg.Internal())

		return
	}

	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("@%s's balances", target.Username),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wallet Balance", Value: fmt.Sprintf("%d", account.WalletBalance), Inline: true},
			{Name: "Bank Balance", Value: fmt.Sprintf("%d", account.BankBalance), Inline: true},
		},
		Color: embedpkg.ColorBlue,
	})
}

// Register handles the /register slash command.
func (h *Handler) Register(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	l := zerolog.Ctx(ctx)

	user := interactionUser(i)
	if user == nil {
		respondEmbed(s, i, embedpkg.Internal())
		return
	}

	_, err := h.service.Register(ctx, user.ID, i.GuildID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountAlreadyExists) {
			respondEmbed(s, i, &discordgo.MessageEmbed{
				Title:       "Error",
				Description: "You are already registered in the server economy!",
				Color:       embedpkg.ColorRed,
			})

			return
		}

		l.Error().Err(err).Msg("cannot register account")
		respondEmbed(s, i, embedpkg.Internal())

		return
	}

	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Success!",
		Description: "Successfully registered your account in the server economy!",
		Color:       embedpkg.ColorDarkTeal,
	})
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}

	return i.User
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
