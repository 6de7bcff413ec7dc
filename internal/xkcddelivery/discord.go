// Package xkcddelivery manages delivery layer of the /xkcd command group.
package xkcddelivery

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/internal/xkcdservice"
	"github.com/avion-bot/avion/pkg/embedpkg"
)

// Service provides xkcd service layer interface needed by the delivery layer.
type Service interface {
	Latest(ctx context.Context) (xkcdservice.Comic, error)
	ByNum(ctx context.Context, num int) (xkcdservice.Comic, error)
	Random(ctx context.Context) (xkcdservice.Comic, error)
}

// Handler facilitates xkcd delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns xkcd handler.
func NewHandler(xs Service) Handler {
	return Handler{service: xs}
}

// Xkcd handles the /xkcd slash command and its subcommands.
func (h *Handler) Xkcd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	l := zerolog.Ctx(ctx)

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		respondEmbed(s, i, embedpkg.Internal())
		return
	}

	sub := options[0]

	var (
		comic xkcdservice.Comic
		err   error
	)

	switch sub.Name {
	case "today":
		comic, err = h.service.Latest(ctx)
	case "comic":
		num := 0

		for _, opt := range sub.Options {
			if opt.Name == "num" {
				num = int(opt.IntValue())
			}
		}

		comic, err = h.service.ByNum(ctx, num)
	case "random":
		comic, err = h.service.Random(ctx)
	default:
		respondEmbed(s, i, embedpkg.Internal())
		return
	}

	if err != nil {
		if errors.Is(err, xkcdservice.ErrComicNotFound) {
			respondEmbed(s, i, &discordgo.MessageEmbed{
				Title:       "Comic not found",
				Description: "It looks like the comic you requested does not exist. Sorry!",
				Color:       embedpkg.ColorRed,
			})

			return
		}

		l.Error().Err(err).Msg("cannot fetch comic")
		respondEmbed(s, i, embedpkg.Internal())

		return
	}

	respondEmbed(s, i, comicEmbed(comic))
}

func comicEmbed(comic xkcdservice.Comic) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:  comic.SafeTitle,
		Image:  &discordgo.MessageEmbedImage{URL: comic.ImageURL},
		Footer: &discordgo.MessageEmbedFooter{Text: comic.Alt},
		Color:  embedpkg.ColorBlue,
	}
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
