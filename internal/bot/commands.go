package bot

import "github.com/bwmarrin/discordgo"

func boolPtr(b bool) *bool { return &b }

var minOne = float64(1)

// commands defines the slash command schema registered with the gateway.
// Input bounds live here: the amount minimum is enforced by Discord before
// the interaction ever reaches a handler.
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "balance",
		Description: "Gets a user's balance.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Selected user - defaults to you",
			},
		},
	},
	{
		Name:         "register",
		Description:  "Register your user account in the server economy.",
		DMPermission: boolPtr(false),
	},
	{
		Name:         "give",
		Description:  "Give another user some of your coins.",
		DMPermission: boolPtr(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "receiver",
				Description: "Selected user",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "The amount to give",
				Required:    true,
				MinValue:    &minOne,
			},
		},
	},
	{
		Name:        "userinfo",
		Description: "Displays your or another user's username, avatar, and account creation date",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Selected user",
			},
		},
	},
	{
		Name:        "avatar",
		Description: "Avatar commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "user",
				Description: "Gets a user's global avatar.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "Selected user",
					},
				},
			},
		},
	},
	{
		Name:        "about",
		Description: "Information about Avion",
	},
	{
		Name:        "xkcd",
		Description: "XKCD commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "today",
				Description: "Get today's comic from XKCD.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "comic",
				Description: "Get a specific comic from XKCD.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "num",
						Description: "Comic number",
						Required:    true,
						MinValue:    &minOne,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "random",
				Description: "Get a random comic from XKCD.",
			},
		},
	},
}
