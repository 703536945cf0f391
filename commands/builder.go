package commands

import (
	"modlog-bot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns the full slash-command set registered for
// every configured guild.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Ban,
		defs.Kick,
		defs.Mute,
		defs.Warn,
		defs.PressBan,
		defs.Remove,
		defs.Modlog,
		defs.BotStatus,
	}
}
