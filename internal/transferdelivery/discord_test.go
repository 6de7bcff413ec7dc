package transferdelivery

import (
	"testing"

	"github.com/avion-bot/avion/internal/domain"
	"github.com/avion-bot/avion/internal/transferservice"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestCustomIDRoundTrip(t *testing.T) {
	token := "8f14e45f-ceea-4672-9f5a-9d6f21a4e1c2"

	testCases := []struct {
		name       string
		customID   string
		wantToken  string
		wantChoice domain.Choice
		wantOK     bool
	}{
		{
			name:       "Confirm",
			customID:   buildCustomID(confirmAction, token),
			wantToken:  token,
			wantChoice: domain.ChoiceConfirm,
			wantOK:     true,
		},
		{
			name:       "Cancel",
			customID:   buildCustomID(cancelAction, token),
			wantToken:  token,
			wantChoice: domain.ChoiceCancel,
			wantOK:     true,
		},
		{
			name:     "Foreign prefix",
			customID: "poll:confirm:" + token,
			wantOK:   false,
		},
		{
			name:     "Unknown action",
			customID: "give:maybe:" + token,
			wantOK:   false,
		},
		{
			name:     "Malformed",
			customID: "give",
			wantOK:   false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			gotToken, gotChoice, ok := parseCustomID(tc.customID)
			require.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				require.Equal(t, tc.wantToken, gotToken)
				require.Equal(t, tc.wantChoice, gotChoice)
			}
		})
	}
}

func TestConfirmPromptEmbed(t *testing.T) {
	n := &transferservice.Negotiation{
		Token: "token",
		Request: domain.TransferRequest{
			SenderID:   "1",
			ReceiverID: "2",
			GuildID:    "3",
			Amount:     100,
		},
		SenderWallet:   1000,
		ReceiverWallet: 400,
	}

	embed := confirmPromptEmbed(n, "petr", nil)

	require.Equal(t, "Give to @petr?", embed.Title)
	require.Contains(t, embed.Description, "**100** coins")
	require.Len(t, embed.Fields, 2)
	require.Equal(t, "900", embed.Fields[0].Value)
	require.Equal(t, "500", embed.Fields[1].Value)
	require.Equal(t, "@petr's wallet balance", embed.Fields[1].Name)
}

func TestSuccessEmbed(t *testing.T) {
	result := domain.TransferResult{
		Outcome:  domain.OutcomeConfirmed,
		Sender:   domain.Account{UserID: "1", WalletBalance: 900},
		Receiver: domain.Account{UserID: "2", WalletBalance: 500},
	}

	embed := successEmbed(result, "petr", nil)

	require.Equal(t, "Success!", embed.Title)
	require.Equal(t, "900", embed.Fields[0].Value)
	require.Equal(t, "500", embed.Fields[1].Value)
}

func TestNotEnoughCoinsEmbed(t *testing.T) {
	embed := notEnoughCoinsEmbed(50, 150, nil)

	require.Equal(t, "Not enough money", embed.Title)
	require.Equal(t, "You need **50** more coins to give **150**.", embed.Description)
}

func TestPromptButtons(t *testing.T) {
	components := promptButtons("token")
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	confirm, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	require.Equal(t, "give:confirm:token", confirm.CustomID)
	require.Equal(t, discordgo.SuccessButton, confirm.Style)

	cancel, ok := row.Components[1].(discordgo.Button)
	require.True(t, ok)
	require.Equal(t, "give:cancel:token", cancel.CustomID)
	require.Equal(t, discordgo.SecondaryButton, cancel.Style)
}

func TestInteractionUserID(t *testing.T) {
	member := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: &discordgo.User{ID: "42"}},
		},
	}
	require.Equal(t, "42", interactionUserID(member))

	direct := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "7"},
		},
	}
	require.Equal(t, "7", interactionUserID(direct))

	require.Empty(t, interactionUserID(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}))
}
