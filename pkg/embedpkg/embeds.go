// Package embedpkg provides shared embed builders used across command handlers.
package embedpkg

import "github.com/bwmarrin/discordgo"

// Embed colours shared by all commands.
const (
	ColorBlue     = 0x3498DB
	ColorRed      = 0xE74C3C
	ColorGold     = 0xF1C40F
	ColorDarkTeal = 0x11806A
)

// UserNotRegistered tells the caller that the target user has no account yet.
func UserNotRegistered() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "User not found",
		Description: "This user may not have used Avion before.",
		Color:       ColorRed,
	}
}

// BotsNotAllowed rejects bots as transfer counterparties.
func BotsNotAllowed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Bots are not allowed",
		Description: "Bots cannot hold coins, so you cannot give them any.",
		Color:       ColorRed,
	}
}

// CannotUseYourself rejects commands targeting the invoking user.
func CannotUseYourself() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: "You cannot use this command on yourself.",
		Color:       ColorRed,
	}
}

// Internal is the generic failure reply when nothing more specific applies.
func Internal() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Something went wrong",
		Description: "Please try again later.",
		Color:       ColorRed,
	}
}

// Author builds an embed author block from a guild name and icon.
func Author(name, iconURL string) *discordgo.MessageEmbedAuthor {
	return &discordgo.MessageEmbedAuthor{Name: name, IconURL: iconURL}
}
