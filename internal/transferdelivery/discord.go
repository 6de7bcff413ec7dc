// Package transferdelivery manages delivery layer of wallet transfers.
package transferdelivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/internal/domain"
	"github.com/avion-bot/avion/internal/transferservice"
	"github.com/avion-bot/avion/pkg/embedpkg"
	"github.com/avion-bot/avion/pkg/metricspkg"
)

// Service provides transfer service layer interface needed by the delivery layer.
type Service interface {
	Begin(ctx context.Context, req domain.TransferRequest) (*transferservice.Negotiation, error)
	Resolve(token, actorID string, choice domain.Choice) error
	Conclude(ctx context.Context, n *transferservice.Negotiation) (domain.TransferResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

const (
	customIDPrefix = "give"
	confirmAction  = "confirm"
	cancelAction   = "cancel"
)

func buildCustomID(action, token string) string {
	return customIDPrefix + ":" + action + ":" + token
}

// parseCustomID extracts the pending token and choice from a button custom id.
// Unrecognized ids report ok=false and are ignored by the component handler.
func parseCustomID(customID string) (token string, choice domain.Choice, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != customIDPrefix {
		return "", 0, false
	}

	switch parts[1] {
	case confirmAction:
		return parts[2], domain.ChoiceConfirm, true
	case cancelAction:
		return parts[2], domain.ChoiceCancel, true
	}

	return "", 0, false
}

// Give handles the /give slash command: it opens a transfer negotiation,
// prompts the sender with confirm/cancel buttons, and blocks until the
// negotiation resolves.
func (h *Handler) Give(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	l := zerolog.Ctx(ctx)

	data := i.ApplicationCommandData()

	var (
		receiver *discordgo.User
		amount   int64
	)

	for _, opt := range data.Options {
		switch opt.Name {
		case "receiver":
			receiver = opt.UserValue(s)
		case "amount":
			amount = opt.IntValue()
		}
	}

	if receiver == nil || i.Member == nil {
		respondEmbed(s, i, embedpkg.Internal(), false)
		return
	}

	sender := i.Member.User

	n, err := h.service.Begin(ctx, domain.TransferRequest{
		SenderID:      sender.ID,
		ReceiverID:    receiver.ID,
		GuildID:       i.GuildID,
		Amount:        amount,
		ReceiverIsBot: receiver.Bot,
	})
	if err != nil {
		h.respondRejection(ctx, s, i, err, amount)
		return
	}

	author := guildAuthor(s, i.GuildID)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{confirmPromptEmbed(n, receiver.Username, author)},
			Components: promptButtons(n.Token),
		},
	})
	if err != nil {
		l.Error().Err(err).Msg("cannot send transfer confirmation prompt")
		// Without a prompt nobody can confirm; let the window expire.
	}

	result, err := h.service.Conclude(ctx, n)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}

		editResponse(s, i, embedpkg.Internal())

		return
	}

	metricspkg.TransferOutcomes.WithLabelValues(result.Outcome.String()).Inc()

	switch result.Outcome {
	case domain.OutcomeConfirmed:
		editResponse(s, i, successEmbed(result, receiver.Username, author))
	case domain.OutcomeCancelled:
		editResponse(s, i, cancelledEmbed())
	case domain.OutcomeTimedOut:
		editResponse(s, i, timedOutEmbed())
	}
}

// Component handles confirm/cancel button clicks for pending transfers.
func (h *Handler) Component(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	l := zerolog.Ctx(ctx)

	token, choice, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	actorID := interactionUserID(i)

	err := h.service.Resolve(token, actorID, choice)

	switch {
	case err == nil:
		ack := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
		if ack != nil {
			l.Error().Err(ack).Msg("cannot acknowledge transfer button")
		}
	case errors.Is(err, domain.ErrNotYourTransfer):
		respondEmbed(s, i, notYourTransferEmbed(), true)
	case errors.Is(err, domain.ErrNegotiationClosed):
		respondEmbed(s, i, expiredEmbed(), true)
	default:
		l.Error().Err(err).Str("token", token).Msg("cannot resolve transfer")
	}
}

func (h *Handler) respondRejection(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error, amount int64) {
	l := zerolog.Ctx(ctx)

	var insufficient *domain.InsufficientBalanceError

	switch {
	case errors.Is(err, domain.ErrBotCounterparty):
		metricspkg.TransferRejections.WithLabelValues("bot").Inc()
		respondEmbed(s, i, embedpkg.BotsNotAllowed(), false)
	case errors.Is(err, domain.ErrSelfTransfer):
		metricspkg.TransferRejections.WithLabelValues("self").Inc()
		respondEmbed(s, i, embedpkg.CannotUseYourself(), false)
	case errors.Is(err, domain.ErrAccountNotFound):
		metricspkg.TransferRejections.WithLabelValues("account_missing").Inc()
		respondEmbed(s, i, embedpkg.UserNotRegistered(), false)
	case errors.As(err, &insufficient):
		metricspkg.TransferRejections.WithLabelValues("insufficient_funds").Inc()
		respondEmbed(s, i, notEnoughCoinsEmbed(insufficient.Shortfall, amount, guildAuthor(s, i.GuildID)), false)
	default:
		l.Error().Err(err).Msg("cannot begin transfer")
		respondEmbed(s, i, embedpkg.Internal(), false)
	}
}

func promptButtons(token string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Give",
					Style:    discordgo.SuccessButton,
					CustomID: buildCustomID(confirmAction, token),
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.SecondaryButton,
					CustomID: buildCustomID(cancelAction, token),
				},
			},
		},
	}
}

func confirmPromptEmbed(n *transferservice.Negotiation, receiverName string, author *discordgo.MessageEmbedAuthor) *discordgo.MessageEmbed {
	proposedSender, proposedReceiver := n.ProposedView()

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Give to @%s?", receiverName),
		Description: fmt.Sprintf(
			"Are you sure you want to give **%d** coins to **@%s**?\n\nYour future balances are below.",
			n.Request.Amount, receiverName,
		),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Your wallet balance", Value: fmt.Sprintf("%d", proposedSender), Inline: true},
			{Name: fmt.Sprintf("@%s's wallet balance", receiverName), Value: fmt.Sprintf("%d", proposedReceiver), Inline: true},
		},
		Author: author,
		Color:  embedpkg.ColorGold,
	}
}

func successEmbed(result domain.TransferResult, receiverName string, author *discordgo.MessageEmbedAuthor) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Success!",
		Description: "The new balances are below.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Your wallet balance", Value: fmt.Sprintf("%d", result.Sender.WalletBalance), Inline: true},
			{Name: fmt.Sprintf("@%s's wallet balance", receiverName), Value: fmt.Sprintf("%d", result.Receiver.WalletBalance), Inline: true},
		},
		Author: author,
		Color:  embedpkg.ColorDarkTeal,
	}
}

func notEnoughCoinsEmbed(shortfall, amount int64, author *discordgo.MessageEmbedAuthor) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Not enough money",
		Description: fmt.Sprintf("You need **%d** more coins to give **%d**.", shortfall, amount),
		Author:      author,
		Color:       embedpkg.ColorRed,
	}
}

func cancelledEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Cancelled",
		Description: "No coins changed hands.",
		Color:       embedpkg.ColorRed,
	}
}

func timedOutEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Timed out",
		Description: "The transfer was not confirmed in time. No coins changed hands.",
		Color:       embedpkg.ColorRed,
	}
}

func notYourTransferEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Not your transfer",
		Description: "Only the sender can confirm or cancel this transfer.",
		Color:       embedpkg.ColorRed,
	}
}

func expiredEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Transfer expired",
		Description: "This transfer was already resolved or timed out.",
		Color:       embedpkg.ColorRed,
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}

	if i.User != nil {
		return i.User.ID
	}

	return ""
}

func guildAuthor(s *discordgo.Session, guildID string) *discordgo.MessageEmbedAuthor {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return nil
		}
	}

	return embedpkg.Author(guild.Name, guild.IconURL(""))
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	embeds := []*discordgo.MessageEmbed{embed}
	components := []discordgo.MessageComponent{}

	_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
}
